package domain

// CaseStatus represents the review state of a case.
type CaseStatus string

const (
	StatusPendingReview CaseStatus = "PENDING_REVIEW"
	StatusApproved      CaseStatus = "APPROVED"
	StatusDenied        CaseStatus = "DENIED"
	StatusInProgress    CaseStatus = "IN_PROGRESS"
)

// ValidStatuses maps every known CaseStatus for membership checks.
var ValidStatuses = map[CaseStatus]bool{
	StatusPendingReview: true,
	StatusApproved:      true,
	StatusDenied:        true,
	StatusInProgress:    true,
}

// IsValid reports whether s is a known case status.
func (s CaseStatus) IsValid() bool {
	return ValidStatuses[s]
}

// CasePriority represents the triage priority assigned at ingestion.
type CasePriority string

const (
	PriorityHigh   CasePriority = "HIGH"
	PriorityMedium CasePriority = "MEDIUM"
	PriorityLow    CasePriority = "LOW"
)

// ValidPriorities maps every known CasePriority for membership checks.
var ValidPriorities = map[CasePriority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

// IsValid reports whether p is a known case priority.
func (p CasePriority) IsValid() bool {
	return ValidPriorities[p]
}

// Known document types produced by the upstream extraction pipeline.
const (
	DocTypePreAuth        = "pre-auth"
	DocTypeClinicalNote   = "clinical-note"
	DocTypeLabReport      = "lab-report"
	DocTypeInsuranceClaim = "insurance-claim"
	DocTypeReferral       = "referral"
	DocTypePrescription   = "prescription"
)

// DocumentTypes lists the known document types in display order.
var DocumentTypes = []string{
	DocTypePreAuth,
	DocTypeClinicalNote,
	DocTypeLabReport,
	DocTypeInsuranceClaim,
	DocTypeReferral,
	DocTypePrescription,
}
