package service_test

import (
	"testing"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/service"
)

func validContestData() *leetcode.RawData {
	return &leetcode.RawData{
		UserContestRanking: &leetcode.RawContestRanking{
			AttendedContestsCount: 12,
			Rating:                1686.5,
			GlobalRanking:         5000,
			TotalParticipants:     100000,
			Badge:                 &leetcode.RawContestBadge{Name: "Guardian"},
		},
		UserContestRankingHistory: []leetcode.RawContestHistoryEntry{
			{
				Attended:            true,
				Rating:              1550.25,
				Ranking:             1000,
				TrendDirection:      "UP",
				ProblemsSolved:      3,
				TotalProblems:       4,
				FinishTimeInSeconds: 3600,
				Contest: leetcode.RawContestInfo{
					Title:     "Weekly Contest 123",
					StartTime: 1615694400,
				},
			},
			{
				Attended:       false,
				TrendDirection: "NONE",
				Contest: leetcode.RawContestInfo{
					Title:     "Weekly Contest 124",
					StartTime: 1616299200,
				},
			},
		},
	}
}

func TestDecodeContestRanking(t *testing.T) {
	resp := service.DecodeContestRanking(validContestData())

	if resp.Status != "success" || resp.Message != "retrieved" {
		t.Fatalf("envelope = %s/%s", resp.Status, resp.Message)
	}
	if resp.AttendedContestsCount != 12 || resp.Rating != 1686.5 {
		t.Errorf("ranking fields = %d/%v", resp.AttendedContestsCount, resp.Rating)
	}
	// 5000/100000 * 100, half-up to two decimals.
	if resp.TopPercentage != 5.0 {
		t.Errorf("topPercentage = %v, want 5.0", resp.TopPercentage)
	}
	if resp.Badge == nil || resp.Badge.Name != "Guardian" {
		t.Errorf("badge = %+v", resp.Badge)
	}
	if len(resp.ContestHistory) != 2 {
		t.Fatalf("history length = %d", len(resp.ContestHistory))
	}
	first := resp.ContestHistory[0]
	if !first.Attended || first.Contest.Title != "Weekly Contest 123" || first.FinishTimeInSeconds != 3600 {
		t.Errorf("first entry = %+v", first)
	}
}

func TestDecodeContestRankingNoHistory(t *testing.T) {
	resp := service.DecodeContestRanking(&leetcode.RawData{})

	if resp.Status != "error" {
		t.Fatalf("status = %s", resp.Status)
	}
	if resp.Message != "user has no contest history" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.AttendedContestsCount != 0 || resp.Rating != 0 || resp.TopPercentage != 0 {
		t.Errorf("error envelope carries data: %+v", resp)
	}
	if resp.Badge != nil {
		t.Errorf("badge = %+v, want nil", resp.Badge)
	}
	if resp.ContestHistory == nil || len(resp.ContestHistory) != 0 {
		t.Errorf("contestHistory = %v, want empty slice", resp.ContestHistory)
	}
}

func TestDecodeContestRankingTopPercentageGuards(t *testing.T) {
	data := validContestData()
	data.UserContestRanking.TotalParticipants = 0
	if resp := service.DecodeContestRanking(data); resp.TopPercentage != 0.0 {
		t.Errorf("topPercentage with zero participants = %v", resp.TopPercentage)
	}

	data = validContestData()
	data.UserContestRanking.GlobalRanking = 0
	if resp := service.DecodeContestRanking(data); resp.TopPercentage != 0.0 {
		t.Errorf("topPercentage with zero ranking = %v", resp.TopPercentage)
	}
}

func TestDecodeContestRankingOptionalBadge(t *testing.T) {
	data := validContestData()
	data.UserContestRanking.Badge = nil

	resp := service.DecodeContestRanking(data)
	if resp.Status != "success" {
		t.Fatalf("status = %s", resp.Status)
	}
	if resp.Badge != nil {
		t.Errorf("badge = %+v, want nil", resp.Badge)
	}
}

func TestDecodeContestRankingRoundsHalfUp(t *testing.T) {
	data := validContestData()
	data.UserContestRanking.GlobalRanking = 2
	data.UserContestRanking.TotalParticipants = 3

	resp := service.DecodeContestRanking(data)
	if resp.TopPercentage != 66.67 {
		t.Errorf("topPercentage = %v, want 66.67", resp.TopPercentage)
	}
}
