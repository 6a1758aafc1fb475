package dto

// ContestBadge carries only the badge name, matching the upstream selection.
type ContestBadge struct {
	Name string `json:"name"`
}

type ContestInfo struct {
	Title     string `json:"title"`
	StartTime int64  `json:"startTime"`
}

type ContestHistoryEntry struct {
	Attended            bool        `json:"attended"`
	Rating              float64     `json:"rating"`
	Ranking             int         `json:"ranking"`
	TrendDirection      string      `json:"trendDirection"`
	ProblemsSolved      int         `json:"problemsSolved"`
	TotalProblems       int         `json:"totalProblems"`
	FinishTimeInSeconds int         `json:"finishTimeInSeconds"`
	Contest             ContestInfo `json:"contest"`
}

type ContestRankingResponse struct {
	Status                string                `json:"status"`
	Message               string                `json:"message"`
	AttendedContestsCount int                   `json:"attendedContestsCount"`
	Rating                float64               `json:"rating"`
	GlobalRanking         int                   `json:"globalRanking"`
	TotalParticipants     int                   `json:"totalParticipants"`
	TopPercentage         float64               `json:"topPercentage"`
	Badge                 *ContestBadge         `json:"badge"`
	ContestHistory        []ContestHistoryEntry `json:"contestHistory"`
}

// ErrorContestRankingResponse fills every non-status field with its zero
// default so error replies never carry partial data.
func ErrorContestRankingResponse(status, message string) ContestRankingResponse {
	return ContestRankingResponse{
		Status:         status,
		Message:        message,
		ContestHistory: []ContestHistoryEntry{},
	}
}
