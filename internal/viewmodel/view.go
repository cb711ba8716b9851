package viewmodel

import (
	"fmt"
	"strings"

	"github.com/govilvipul/HealthcareCM/internal/domain"
)

// Placeholders used when a case field is absent.
const (
	placeholderNotSpecified = "Not specified"
	placeholderNA           = "N/A"
	defaultStatus           = "UNKNOWN"
	defaultPriority         = string(domain.PriorityMedium)
)

// CaseView is a display-ready projection of a Case: placeholders for
// missing fields, formatted dates, percentage confidence and badge
// classes for status and priority.
type CaseView struct {
	CaseID       string `json:"case_id"`
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`

	PatientName   string `json:"patient_name"`
	PatientDOB    string `json:"patient_dob"`
	MemberID      string `json:"member_id"`
	InsurancePlan string `json:"insurance_plan"`
	PolicyNumber  string `json:"policy_number"`

	ReferringProvider string `json:"referring_provider"`
	ProviderNPI       string `json:"provider_npi"`
	Facility          string `json:"facility"`

	CPTCodes             string `json:"cpt_codes"`
	ICD10Codes           string `json:"icd10_codes"`
	DiagnosisDescription string `json:"diagnosis_description,omitempty"`
	CaseSummary          string `json:"case_summary,omitempty"`

	Status        string `json:"status"`
	StatusBadge   string `json:"status_badge"`
	Priority      string `json:"priority"`
	PriorityBadge string `json:"priority_badge"`

	Confidence string `json:"confidence"`

	UploadDate   string `json:"upload_date"`
	ReceivedDate string `json:"received_date"`

	KeyFindings []string `json:"key_findings,omitempty"`
	HasDocument bool     `json:"has_document"`
}

// NewCaseView builds the display projection for a single case.
func NewCaseView(c domain.Case) CaseView {
	status := orDefault(string(c.Status), defaultStatus)
	priority := orDefault(string(c.Priority), defaultPriority)

	return CaseView{
		CaseID:       orDefault(c.CaseID, placeholderNA),
		DocumentType: orDefault(c.DocumentType, placeholderNA),
		FileName:     orDefault(c.FileName, placeholderNA),

		PatientName:   orDefault(c.PatientName, placeholderNotSpecified),
		PatientDOB:    orDefault(c.PatientDOB, placeholderNotSpecified),
		MemberID:      orDefault(c.MemberID, placeholderNotSpecified),
		InsurancePlan: orDefault(c.InsurancePlan, placeholderNotSpecified),
		PolicyNumber:  orDefault(c.PolicyNumber, placeholderNotSpecified),

		ReferringProvider: orDefault(c.ReferringProvider, placeholderNotSpecified),
		ProviderNPI:       orDefault(c.ProviderNPI, placeholderNotSpecified),
		Facility:          orDefault(c.Facility, placeholderNotSpecified),

		CPTCodes:             strings.Join(c.CPTCodes, ", "),
		ICD10Codes:           strings.Join(c.ICD10Codes, ", "),
		DiagnosisDescription: c.DiagnosisDescription,
		CaseSummary:          c.CaseSummary,

		Status:        status,
		StatusBadge:   badgeClass("status", status),
		Priority:      priority,
		PriorityBadge: badgeClass("priority", priority),

		Confidence: fmt.Sprintf("%.1f%%", c.ConfidenceScore*100),

		UploadDate:   FormatTimestamp(c.UploadDate),
		ReceivedDate: orDefault(FormatDate(c.UploadDate), placeholderNA),

		KeyFindings: keyFindings(c.Attributes),
		HasDocument: c.S3Location != "",
	}
}

// NewCaseViews maps a case list to views, preserving order.
func NewCaseViews(cases []domain.Case) []CaseView {
	views := make([]CaseView, 0, len(cases))
	for i := range cases {
		views = append(views, NewCaseView(cases[i]))
	}
	return views
}

// keyFindings pulls extractionMetadata.keyFindings out of the raw record.
func keyFindings(attrs map[string]any) []string {
	resolved := Lookup(attrs, "extractionMetadata.keyFindings", nil)
	list, ok := resolved.([]any)
	if !ok {
		return nil
	}
	findings := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			findings = append(findings, s)
		}
	}
	return findings
}

// badgeClass derives a CSS badge class, e.g. "status-pending-review".
func badgeClass(kind, value string) string {
	return kind + "-" + strings.ReplaceAll(strings.ToLower(value), "_", "-")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
