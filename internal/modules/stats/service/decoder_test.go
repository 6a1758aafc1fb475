package service_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/service"
)

func validStatsData() *leetcode.RawData {
	calendar := `{"1711929600": 5}`
	return &leetcode.RawData{
		AllQuestionsCount: []leetcode.RawQuestionCount{
			{Difficulty: "All", Count: 3000},
			{Difficulty: "Easy", Count: 800},
			{Difficulty: "Medium", Count: 1600},
			{Difficulty: "Hard", Count: 600},
		},
		MatchedUser: &leetcode.RawMatchedUser{
			Contributions: &leetcode.RawContributions{Points: 50},
			Profile:       &leetcode.RawProfile{Ranking: 123456, Reputation: 10},
			SubmitStats: &leetcode.RawSubmitStats{
				AcSubmissionNum: []leetcode.RawSubmissionCount{
					{Difficulty: "All", Count: 100, Submissions: 200},
					{Difficulty: "Easy", Count: 40, Submissions: 60},
					{Difficulty: "Medium", Count: 40, Submissions: 90},
					{Difficulty: "Hard", Count: 20, Submissions: 50},
				},
				TotalSubmissionNum: []leetcode.RawSubmissionCount{
					{Difficulty: "All", Count: 130, Submissions: 300},
					{Difficulty: "Easy", Count: 50, Submissions: 90},
					{Difficulty: "Medium", Count: 55, Submissions: 140},
					{Difficulty: "Hard", Count: 25, Submissions: 70},
				},
			},
			SubmissionCalendar: &calendar,
		},
	}
}

func TestDecodeStats(t *testing.T) {
	resp := service.DecodeStats(validStatsData())

	if resp.Status != "success" || resp.Message != "retrieved" {
		t.Fatalf("envelope = %s/%s", resp.Status, resp.Message)
	}
	if resp.TotalSolved != 100 || resp.TotalQuestions != 3000 {
		t.Errorf("totals = %d/%d", resp.TotalSolved, resp.TotalQuestions)
	}
	if resp.EasySolved != 40 || resp.TotalEasy != 800 {
		t.Errorf("easy = %d/%d", resp.EasySolved, resp.TotalEasy)
	}
	if resp.MediumSolved != 40 || resp.TotalMedium != 1600 {
		t.Errorf("medium = %d/%d", resp.MediumSolved, resp.TotalMedium)
	}
	if resp.HardSolved != 20 || resp.TotalHard != 600 {
		t.Errorf("hard = %d/%d", resp.HardSolved, resp.TotalHard)
	}
	// 200/300 accepted submissions, rounded half-up.
	if resp.AcceptanceRate != 66.67 {
		t.Errorf("acceptanceRate = %v, want 66.67", resp.AcceptanceRate)
	}
	if resp.Ranking != 123456 || resp.ContributionPoints != 50 || resp.Reputation != 10 {
		t.Errorf("profile fields = %d/%d/%d", resp.Ranking, resp.ContributionPoints, resp.Reputation)
	}
	if resp.SubmissionCalendar["1711929600"] != 5 {
		t.Errorf("calendar = %v", resp.SubmissionCalendar)
	}
}

func TestDecodeStatsIsIdempotent(t *testing.T) {
	data := validStatsData()
	first := service.DecodeStats(data)
	second := service.DecodeStats(data)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("decoding twice diverged:\n%+v\n%+v", first, second)
	}
}

func TestDecodeStatsZeroSubmissionsGuard(t *testing.T) {
	data := validStatsData()
	for i := range data.MatchedUser.SubmitStats.TotalSubmissionNum {
		data.MatchedUser.SubmitStats.TotalSubmissionNum[i].Submissions = 0
	}

	resp := service.DecodeStats(data)
	if resp.Status != "success" {
		t.Fatalf("status = %s, message = %s", resp.Status, resp.Message)
	}
	if resp.AcceptanceRate != 0.0 {
		t.Errorf("acceptanceRate = %v, want 0.0", resp.AcceptanceRate)
	}
}

func TestDecodeStatsMissingMatchedUser(t *testing.T) {
	data := validStatsData()
	data.MatchedUser = nil

	resp := service.DecodeStats(data)
	if resp.Status != "error" {
		t.Fatalf("status = %s", resp.Status)
	}
	if !strings.Contains(resp.Message, "matchedUser") {
		t.Errorf("message = %q", resp.Message)
	}
	assertStatsErrorDefaults(t, resp)
}

func TestDecodeStatsMissingTierEntry(t *testing.T) {
	data := validStatsData()
	data.AllQuestionsCount = data.AllQuestionsCount[:2] // drop Medium and Hard

	resp := service.DecodeStats(data)
	if resp.Status != "error" {
		t.Fatalf("status = %s", resp.Status)
	}
	assertStatsErrorDefaults(t, resp)
}

func TestDecodeStatsMalformedCalendar(t *testing.T) {
	data := validStatsData()
	broken := `{"1711929600":`
	data.MatchedUser.SubmissionCalendar = &broken

	resp := service.DecodeStats(data)
	if resp.Status != "error" {
		t.Fatalf("status = %s", resp.Status)
	}
	if !strings.Contains(resp.Message, "submissionCalendar") {
		t.Errorf("message = %q", resp.Message)
	}
	assertStatsErrorDefaults(t, resp)
}

func assertStatsErrorDefaults(t *testing.T, resp interface{}) {
	t.Helper()
	v := reflect.ValueOf(resp)
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Name
		if name == "Status" || name == "Message" || name == "SubmissionCalendar" {
			continue
		}
		if !v.Field(i).IsZero() {
			t.Errorf("error envelope field %s not zero: %v", name, v.Field(i).Interface())
		}
	}
}
