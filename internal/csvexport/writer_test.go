package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govilvipul/HealthcareCM/internal/csvexport"
	"github.com/govilvipul/HealthcareCM/internal/domain"
)

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteCases([]domain.Case{
		{
			CaseID:          "CASE-001",
			Status:          domain.StatusPendingReview,
			Priority:        domain.PriorityHigh,
			DocumentType:    "pre-auth",
			FileName:        "auth_request.pdf",
			PatientName:     "Jane Smith",
			CPTCodes:        []string{"99213", "72148"},
			ICD10Codes:      []string{"M54.5"},
			ConfidenceScore: 0.875,
			UploadDate:      int64(1705314600),
		},
		{
			CaseID: "CASE-002",
			Status: domain.StatusApproved,
		},
	}))
	require.NoError(t, w.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "Case ID", header[0])
	assert.Equal(t, "Upload Date", header[len(header)-1])

	row := records[1]
	assert.Len(t, row, len(header))
	assert.Equal(t, "CASE-001", row[0])
	assert.Equal(t, "PENDING_REVIEW", row[1])
	assert.Equal(t, "HIGH", row[2])
	assert.Equal(t, "Jane Smith", row[5])
	assert.Equal(t, "99213; 72148", row[13])
	assert.Equal(t, "M54.5", row[14])
	assert.Equal(t, "87.5%", row[17])
	assert.Equal(t, "2024-01-15 10:30:00", row[18])

	sparse := records[2]
	assert.Equal(t, "CASE-002", sparse[0])
	assert.Equal(t, "0.0%", sparse[17])
	assert.Equal(t, "", sparse[18])
}

func TestWriter_PreservesCaseOrder(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)

	require.NoError(t, w.WriteCases([]domain.Case{
		{CaseID: "CASE-003"},
		{CaseID: "CASE-001"},
		{CaseID: "CASE-002"},
	}))
	require.NoError(t, w.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "CASE-003", records[0][0])
	assert.Equal(t, "CASE-001", records[1][0])
	assert.Equal(t, "CASE-002", records[2][0])
}
