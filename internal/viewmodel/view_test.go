package viewmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govilvipul/HealthcareCM/internal/domain"
	"github.com/govilvipul/HealthcareCM/internal/viewmodel"
)

func TestNewCaseView_FullCase(t *testing.T) {
	c := domain.Case{
		CaseID:          "CASE-001",
		Status:          domain.StatusPendingReview,
		Priority:        domain.PriorityHigh,
		DocumentType:    domain.DocTypePreAuth,
		PatientName:     "Jane Smith",
		CPTCodes:        []string{"99213", "71046"},
		ICD10Codes:      []string{"E11.9"},
		ConfidenceScore: 0.875,
		FileName:        "preauth_smith.pdf",
		S3Location:      "s3://case-docs/preauth_smith.pdf",
		UploadDate:      "2024-01-15T10:30:00Z",
		Attributes: map[string]any{
			"extractionMetadata": map[string]any{
				"keyFindings": []any{"MRI requested", "Prior therapy documented"},
			},
		},
	}

	view := viewmodel.NewCaseView(c)

	assert.Equal(t, "CASE-001", view.CaseID)
	assert.Equal(t, "Jane Smith", view.PatientName)
	assert.Equal(t, "PENDING_REVIEW", view.Status)
	assert.Equal(t, "status-pending-review", view.StatusBadge)
	assert.Equal(t, "priority-high", view.PriorityBadge)
	assert.Equal(t, "87.5%", view.Confidence)
	assert.Equal(t, "99213, 71046", view.CPTCodes)
	assert.Equal(t, "E11.9", view.ICD10Codes)
	assert.Equal(t, "2024-01-15 10:30:00", view.UploadDate)
	assert.Equal(t, "2024-01-15", view.ReceivedDate)
	assert.Equal(t, []string{"MRI requested", "Prior therapy documented"}, view.KeyFindings)
	assert.True(t, view.HasDocument)
}

func TestNewCaseView_EmptyCaseUsesPlaceholders(t *testing.T) {
	view := viewmodel.NewCaseView(domain.Case{})

	assert.Equal(t, "N/A", view.CaseID)
	assert.Equal(t, "N/A", view.DocumentType)
	assert.Equal(t, "Not specified", view.PatientName)
	assert.Equal(t, "Not specified", view.ReferringProvider)
	assert.Equal(t, "UNKNOWN", view.Status)
	assert.Equal(t, "status-unknown", view.StatusBadge)
	assert.Equal(t, "MEDIUM", view.Priority)
	assert.Equal(t, "priority-medium", view.PriorityBadge)
	assert.Equal(t, "0.0%", view.Confidence)
	assert.Empty(t, view.KeyFindings)
	assert.False(t, view.HasDocument)
}

func TestNewCaseView_MalformedExtractionMetadata(t *testing.T) {
	c := domain.Case{
		CaseID: "CASE-002",
		Attributes: map[string]any{
			"extractionMetadata": "not-an-object",
		},
	}

	view := viewmodel.NewCaseView(c)
	assert.Empty(t, view.KeyFindings)
}

func TestNewCaseViews_PreservesOrder(t *testing.T) {
	cases := []domain.Case{{CaseID: "A"}, {CaseID: "B"}, {CaseID: "C"}}

	views := viewmodel.NewCaseViews(cases)

	assert.Len(t, views, 3)
	assert.Equal(t, "A", views[0].CaseID)
	assert.Equal(t, "C", views[2].CaseID)
}
