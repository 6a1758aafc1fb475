package service

import (
	"errors"
	"fmt"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/dto"
	"github.com/tashifkhan/LeetCode-Stats-API/pkg/numeric"
)

const (
	tierAll    = "All"
	tierEasy   = "Easy"
	tierMedium = "Medium"
	tierHard   = "Hard"
)

// DecodeStats maps a raw stats query response onto StatsResponse. Any missing
// or malformed field yields an error envelope carrying the decode error text.
func DecodeStats(data *leetcode.RawData) dto.StatsResponse {
	resp, err := decodeStats(data)
	if err != nil {
		return dto.ErrorStatsResponse("error", err.Error())
	}
	return resp
}

func decodeStats(data *leetcode.RawData) (dto.StatsResponse, error) {
	var zero dto.StatsResponse

	user := data.MatchedUser
	if user == nil {
		return zero, errors.New("missing matchedUser in response")
	}
	if user.SubmitStats == nil {
		return zero, errors.New("missing submitStats in response")
	}
	if user.Contributions == nil {
		return zero, errors.New("missing contributions in response")
	}
	if user.Profile == nil {
		return zero, errors.New("missing profile in response")
	}

	// Entries are matched by difficulty label rather than array position; the
	// upstream order (All, Easy, Medium, Hard) is not part of its contract.
	totals, err := questionCounts(data.AllQuestionsCount)
	if err != nil {
		return zero, err
	}

	accepted, err := submissionCounts(user.SubmitStats.AcSubmissionNum, "acSubmissionNum")
	if err != nil {
		return zero, err
	}
	submitted, err := submissionCounts(user.SubmitStats.TotalSubmissionNum, "totalSubmissionNum")
	if err != nil {
		return zero, err
	}

	acceptanceRate := 0.0
	if submitted[tierAll].Submissions != 0 {
		ratio := float64(accepted[tierAll].Submissions) / float64(submitted[tierAll].Submissions)
		acceptanceRate = numeric.RoundTwo(ratio * 100)
	}

	calendar, err := leetcode.ParseSubmissionCalendar(user.SubmissionCalendar)
	if err != nil {
		return zero, err
	}

	return dto.StatsResponse{
		Status:             "success",
		Message:            "retrieved",
		TotalSolved:        accepted[tierAll].Count,
		TotalQuestions:     totals[tierAll],
		EasySolved:         accepted[tierEasy].Count,
		TotalEasy:          totals[tierEasy],
		MediumSolved:       accepted[tierMedium].Count,
		TotalMedium:        totals[tierMedium],
		HardSolved:         accepted[tierHard].Count,
		TotalHard:          totals[tierHard],
		AcceptanceRate:     acceptanceRate,
		Ranking:            user.Profile.Ranking,
		ContributionPoints: user.Contributions.Points,
		Reputation:         user.Profile.Reputation,
		SubmissionCalendar: calendar,
	}, nil
}

func questionCounts(counts []leetcode.RawQuestionCount) (map[string]int, error) {
	byTier := make(map[string]int, len(counts))
	for _, c := range counts {
		byTier[c.Difficulty] = c.Count
	}
	for _, tier := range []string{tierAll, tierEasy, tierMedium, tierHard} {
		if _, ok := byTier[tier]; !ok {
			return nil, fmt.Errorf("allQuestionsCount has no %q entry", tier)
		}
	}
	return byTier, nil
}

func submissionCounts(counts []leetcode.RawSubmissionCount, field string) (map[string]leetcode.RawSubmissionCount, error) {
	byTier := make(map[string]leetcode.RawSubmissionCount, len(counts))
	for _, c := range counts {
		byTier[c.Difficulty] = c
	}
	for _, tier := range []string{tierAll, tierEasy, tierMedium, tierHard} {
		if _, ok := byTier[tier]; !ok {
			return nil, fmt.Errorf("%s has no %q entry", field, tier)
		}
	}
	return byTier, nil
}
