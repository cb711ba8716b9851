package domain

import "strings"

// searchFields returns the case fields matched by free-text search.
func searchFields(c *Case) []string {
	return []string{
		c.PatientName,
		c.FileName,
		c.DocumentType,
		c.CaseSummary,
		c.DiagnosisDescription,
	}
}

// FilterCriteria narrows a case list. An empty field imposes no
// constraint; active fields are combined with logical AND.
type FilterCriteria struct {
	Status        []CaseStatus
	DocumentTypes []string
	Priority      []CasePriority
	SearchTerm    string
}

// IsZero reports whether no criterion is active.
func (f FilterCriteria) IsZero() bool {
	return len(f.Status) == 0 && len(f.DocumentTypes) == 0 &&
		len(f.Priority) == 0 && f.SearchTerm == ""
}

// FilterCases returns the cases matching every active criterion,
// preserving input order. The input slice is not mutated.
func FilterCases(cases []Case, criteria FilterCriteria) []Case {
	filtered := make([]Case, 0, len(cases))
	for i := range cases {
		if caseMatches(&cases[i], criteria) {
			filtered = append(filtered, cases[i])
		}
	}
	return filtered
}

func caseMatches(c *Case, criteria FilterCriteria) bool {
	if len(criteria.Status) > 0 && !containsStatus(criteria.Status, c.Status) {
		return false
	}
	if len(criteria.DocumentTypes) > 0 && !containsString(criteria.DocumentTypes, c.DocumentType) {
		return false
	}
	if len(criteria.Priority) > 0 && !containsPriority(criteria.Priority, c.Priority) {
		return false
	}
	if criteria.SearchTerm != "" && !matchesSearch(c, criteria.SearchTerm) {
		return false
	}
	return true
}

// matchesSearch reports whether term appears, case-insensitively, in any
// searchable field. Missing fields are treated as empty strings.
func matchesSearch(c *Case, term string) bool {
	term = strings.ToLower(term)
	for _, field := range searchFields(c) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func containsStatus(set []CaseStatus, s CaseStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsPriority(set []CasePriority, p CasePriority) bool {
	for _, v := range set {
		if v == p {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
