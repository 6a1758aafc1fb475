package service

import (
	"errors"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	badge "github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/service"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/profile/dto"
)

// DecodeProfile maps a raw profile query response onto ProfileResponse.
// Identity, contributions, submit stats and the calendar are required; the
// demographic fields all degrade to documented defaults.
func DecodeProfile(data *leetcode.RawData) dto.ProfileResponse {
	resp, err := decodeProfile(data)
	if err != nil {
		return dto.ErrorProfileResponse("error", err.Error())
	}
	return resp
}

func decodeProfile(data *leetcode.RawData) (dto.ProfileResponse, error) {
	var zero dto.ProfileResponse

	user := data.MatchedUser
	if user == nil {
		return zero, errors.New("missing matchedUser in response")
	}
	if user.Contributions == nil {
		return zero, errors.New("missing contributions in response")
	}
	if user.Profile == nil {
		return zero, errors.New("missing profile in response")
	}
	if user.SubmitStats == nil {
		return zero, errors.New("missing submitStats in response")
	}

	calendar, err := leetcode.ParseSubmissionCalendar(user.SubmissionCalendar)
	if err != nil {
		return zero, err
	}

	profile := dto.ProfileDetails{
		RealName:    user.Profile.RealName,
		UserAvatar:  user.Profile.UserAvatar,
		Birthday:    user.Profile.Birthday,
		Ranking:     user.Profile.Ranking,
		Reputation:  user.Profile.Reputation,
		Websites:    orEmpty(user.Profile.Websites),
		CountryName: user.Profile.CountryName,
		Company:     user.Profile.Company,
		School:      user.Profile.School,
		SkillTags:   orEmpty(user.Profile.SkillTags),
		AboutMe:     user.Profile.AboutMe,
		StarRating:  user.Profile.StarRating,
	}

	// Upstream already limits recentSubmissionList to 20; the count is trusted
	// as-is.
	recent := make([]dto.RecentSubmission, 0, len(data.RecentSubmissionList))
	for _, sub := range data.RecentSubmissionList {
		recent = append(recent, dto.RecentSubmission{
			Title:         sub.Title,
			TitleSlug:     sub.TitleSlug,
			Timestamp:     sub.Timestamp,
			StatusDisplay: sub.StatusDisplay,
			Lang:          sub.Lang,
		})
	}

	return dto.ProfileResponse{
		Status:      "success",
		Message:     "retrieved",
		Username:    user.Username,
		GithubURL:   user.GithubURL,
		TwitterURL:  user.TwitterURL,
		LinkedinURL: user.LinkedinURL,
		Contributions: dto.Contribution{
			Points:        user.Contributions.Points,
			QuestionCount: user.Contributions.QuestionCount,
			TestcaseCount: user.Contributions.TestcaseCount,
		},
		Profile:        profile,
		Badges:         badge.MapBadges(user.Badges),
		UpcomingBadges: badge.MapUpcomingBadges(user.UpcomingBadges),
		ActiveBadge:    badge.MapActiveBadge(user.ActiveBadge),
		SubmitStats: dto.SubmitStats{
			AcSubmissionNum:    mapSubmissionCounts(user.SubmitStats.AcSubmissionNum),
			TotalSubmissionNum: mapSubmissionCounts(user.SubmitStats.TotalSubmissionNum),
		},
		SubmissionCalendar: calendar,
		RecentSubmissions:  recent,
	}, nil
}

func mapSubmissionCounts(raw []leetcode.RawSubmissionCount) []dto.SubmissionCount {
	counts := make([]dto.SubmissionCount, 0, len(raw))
	for _, c := range raw {
		counts = append(counts, dto.SubmissionCount{
			Difficulty:  c.Difficulty,
			Count:       c.Count,
			Submissions: c.Submissions,
		})
	}
	return counts
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
