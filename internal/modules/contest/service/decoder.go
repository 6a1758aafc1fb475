package service

import (
	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/dto"
	"github.com/tashifkhan/LeetCode-Stats-API/pkg/numeric"
)

// DecodeContestRanking maps a raw contest query response onto
// ContestRankingResponse. A null userContestRanking is a legitimate no-data
// case and gets its own documented message, distinct from transport failures.
func DecodeContestRanking(data *leetcode.RawData) dto.ContestRankingResponse {
	ranking := data.UserContestRanking
	if ranking == nil {
		return dto.ErrorContestRankingResponse("error", "user has no contest history")
	}

	var badge *dto.ContestBadge
	if ranking.Badge != nil {
		badge = &dto.ContestBadge{Name: ranking.Badge.Name}
	}

	// History is passed through in upstream order, which is chronological.
	history := make([]dto.ContestHistoryEntry, 0, len(data.UserContestRankingHistory))
	for _, entry := range data.UserContestRankingHistory {
		history = append(history, dto.ContestHistoryEntry{
			Attended:            entry.Attended,
			Rating:              entry.Rating,
			Ranking:             entry.Ranking,
			TrendDirection:      entry.TrendDirection,
			ProblemsSolved:      entry.ProblemsSolved,
			TotalProblems:       entry.TotalProblems,
			FinishTimeInSeconds: entry.FinishTimeInSeconds,
			Contest: dto.ContestInfo{
				Title:     entry.Contest.Title,
				StartTime: entry.Contest.StartTime,
			},
		})
	}

	topPercentage := 0.0
	if ranking.GlobalRanking > 0 && ranking.TotalParticipants > 0 {
		percentage := float64(ranking.GlobalRanking) / float64(ranking.TotalParticipants) * 100
		topPercentage = numeric.RoundTwo(percentage)
	}

	return dto.ContestRankingResponse{
		Status:                "success",
		Message:               "retrieved",
		AttendedContestsCount: ranking.AttendedContestsCount,
		Rating:                ranking.Rating,
		GlobalRanking:         ranking.GlobalRanking,
		TotalParticipants:     ranking.TotalParticipants,
		TopPercentage:         topPercentage,
		Badge:                 badge,
		ContestHistory:        history,
	}
}
