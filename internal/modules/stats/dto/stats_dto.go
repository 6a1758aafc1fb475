package dto

// StatsResponse is the flattened per-user statistics payload. Field names
// follow the upstream camelCase convention.
type StatsResponse struct {
	Status             string         `json:"status"`
	Message            string         `json:"message"`
	TotalSolved        int            `json:"totalSolved"`
	TotalQuestions     int            `json:"totalQuestions"`
	EasySolved         int            `json:"easySolved"`
	TotalEasy          int            `json:"totalEasy"`
	MediumSolved       int            `json:"mediumSolved"`
	TotalMedium        int            `json:"totalMedium"`
	HardSolved         int            `json:"hardSolved"`
	TotalHard          int            `json:"totalHard"`
	AcceptanceRate     float64        `json:"acceptanceRate"`
	Ranking            int            `json:"ranking"`
	ContributionPoints int            `json:"contributionPoints"`
	Reputation         int            `json:"reputation"`
	SubmissionCalendar map[string]int `json:"submissionCalendar"`
}

// ErrorStatsResponse fills every non-status field with its zero default so
// error replies never carry partial data.
func ErrorStatsResponse(status, message string) StatsResponse {
	return StatsResponse{
		Status:             status,
		Message:            message,
		SubmissionCalendar: map[string]int{},
	}
}
