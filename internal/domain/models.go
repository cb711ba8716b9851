package domain

// Case is one processed healthcare document awaiting review. Cases are
// created by the upstream extraction pipeline; this system only reads them
// and updates their status.
type Case struct {
	CaseID       string       `json:"caseID"`
	Status       CaseStatus   `json:"status"`
	Priority     CasePriority `json:"priority"`
	DocumentType string       `json:"documentType"`

	PatientName   string `json:"patientName,omitempty"`
	PatientDOB    string `json:"patientDOB,omitempty"`
	MemberID      string `json:"memberId,omitempty"`
	InsurancePlan string `json:"insurancePlan,omitempty"`
	PolicyNumber  string `json:"policyNumber,omitempty"`

	ReferringProvider string `json:"referringProvider,omitempty"`
	ProviderNPI       string `json:"providerNPI,omitempty"`
	Facility          string `json:"facility,omitempty"`

	CPTCodes             []string `json:"cptCodes,omitempty"`
	ICD10Codes           []string `json:"icd10Codes,omitempty"`
	DiagnosisDescription string   `json:"diagnosisDescription,omitempty"`
	CaseSummary          string   `json:"caseSummary,omitempty"`

	// ConfidenceScore is a fraction in [0,1] produced by the upstream AI
	// extraction; display layers multiply by 100.
	ConfidenceScore float64 `json:"confidenceScore"`

	FileName   string `json:"fileName,omitempty"`
	S3Location string `json:"s3Location,omitempty"`

	// UploadDate is either a numeric epoch or an ISO-8601 string, kept as
	// stored; the view model formats it.
	UploadDate any `json:"uploadDate,omitempty"`

	// Attributes is the full normalized store record, including nested
	// fields such as extractionMetadata.keyFindings.
	Attributes map[string]any `json:"-"`
}

// CaseMetrics holds the dashboard tile counts. PendingCases, HighPriority
// and ApprovedCases are independent counts, not a partition.
type CaseMetrics struct {
	TotalCases    int `json:"total_cases"`
	PendingCases  int `json:"pending_cases"`
	HighPriority  int `json:"high_priority"`
	ApprovedCases int `json:"approved_cases"`
}
