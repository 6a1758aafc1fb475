package dto

import commonDto "github.com/tashifkhan/LeetCode-Stats-API/pkg/dto"

type Contribution struct {
	Points        int `json:"points"`
	QuestionCount int `json:"questionCount"`
	TestcaseCount int `json:"testcaseCount"`
}

// ProfileDetails carries the demographic fields; every one of them is
// optional upstream and degrades to its zero value here.
type ProfileDetails struct {
	RealName    string   `json:"realName"`
	UserAvatar  string   `json:"userAvatar"`
	Birthday    string   `json:"birthday"`
	Ranking     int      `json:"ranking"`
	Reputation  int      `json:"reputation"`
	Websites    []string `json:"websites"`
	CountryName string   `json:"countryName"`
	Company     string   `json:"company"`
	School      string   `json:"school"`
	SkillTags   []string `json:"skillTags"`
	AboutMe     string   `json:"aboutMe"`
	StarRating  float64  `json:"starRating"`
}

type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// SubmitStats is the raw submission-count breakdown passed through unchanged.
type SubmitStats struct {
	AcSubmissionNum    []SubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionCount `json:"totalSubmissionNum"`
}

type RecentSubmission struct {
	Title         string `json:"title"`
	TitleSlug     string `json:"titleSlug"`
	Timestamp     string `json:"timestamp"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
}

type ProfileResponse struct {
	Status             string                    `json:"status"`
	Message            string                    `json:"message"`
	Username           string                    `json:"username"`
	GithubURL          *string                   `json:"githubUrl"`
	TwitterURL         *string                   `json:"twitterUrl"`
	LinkedinURL        *string                   `json:"linkedinUrl"`
	Contributions      Contribution              `json:"contributions"`
	Profile            ProfileDetails            `json:"profile"`
	Badges             []commonDto.Badge         `json:"badges"`
	UpcomingBadges     []commonDto.UpcomingBadge `json:"upcomingBadges"`
	ActiveBadge        *commonDto.Badge          `json:"activeBadge"`
	SubmitStats        SubmitStats               `json:"submitStats"`
	SubmissionCalendar map[string]int            `json:"submissionCalendar"`
	RecentSubmissions  []RecentSubmission        `json:"recentSubmissions"`
}

// ErrorProfileResponse fills every non-status field with its zero default so
// error replies never carry partial data.
func ErrorProfileResponse(status, message string) ProfileResponse {
	return ProfileResponse{
		Status:  status,
		Message: message,
		Profile: ProfileDetails{
			Websites:  []string{},
			SkillTags: []string{},
		},
		Badges:         []commonDto.Badge{},
		UpcomingBadges: []commonDto.UpcomingBadge{},
		SubmitStats: SubmitStats{
			AcSubmissionNum:    []SubmissionCount{},
			TotalSubmissionNum: []SubmissionCount{},
		},
		SubmissionCalendar: map[string]int{},
		RecentSubmissions:  []RecentSubmission{},
	}
}
