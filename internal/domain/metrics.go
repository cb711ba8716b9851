package domain

// ComputeMetrics tallies the dashboard counts over cases in a single pass.
func ComputeMetrics(cases []Case) CaseMetrics {
	m := CaseMetrics{TotalCases: len(cases)}
	for i := range cases {
		if cases[i].Status == StatusPendingReview {
			m.PendingCases++
		}
		if cases[i].Status == StatusApproved {
			m.ApprovedCases++
		}
		if cases[i].Priority == PriorityHigh {
			m.HighPriority++
		}
	}
	return m
}
