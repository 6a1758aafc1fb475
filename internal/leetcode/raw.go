package leetcode

import (
	"encoding/json"
	"errors"
	"fmt"
)

// The Raw* types mirror the subset of the upstream GraphQL schema selected by
// the four query templates. Nullable upstream objects are pointers so that a
// missing field is a modeled outcome instead of a silent zero value.

type envelope struct {
	Data   *RawData   `json:"data"`
	Errors []rawError `json:"errors"`
}

type rawError struct {
	Message string `json:"message"`
}

// RawData is the union of the data sections returned by the four queries; each
// query populates only the fields it selects.
type RawData struct {
	AllQuestionsCount         []RawQuestionCount       `json:"allQuestionsCount"`
	MatchedUser               *RawMatchedUser          `json:"matchedUser"`
	UserContestRanking        *RawContestRanking       `json:"userContestRanking"`
	UserContestRankingHistory []RawContestHistoryEntry `json:"userContestRankingHistory"`
	RecentSubmissionList      []RawRecentSubmission    `json:"recentSubmissionList"`
}

type RawQuestionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type RawMatchedUser struct {
	Username           string             `json:"username"`
	GithubURL          *string            `json:"githubUrl"`
	TwitterURL         *string            `json:"twitterUrl"`
	LinkedinURL        *string            `json:"linkedinUrl"`
	Contributions      *RawContributions  `json:"contributions"`
	Profile            *RawProfile        `json:"profile"`
	Badges             []RawBadge         `json:"badges"`
	UpcomingBadges     []RawUpcomingBadge `json:"upcomingBadges"`
	ActiveBadge        *RawBadge          `json:"activeBadge"`
	SubmitStats        *RawSubmitStats    `json:"submitStats"`
	SubmissionCalendar *string            `json:"submissionCalendar"`
}

type RawContributions struct {
	Points        int `json:"points"`
	QuestionCount int `json:"questionCount"`
	TestcaseCount int `json:"testcaseCount"`
}

type RawProfile struct {
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

type RawSubmitStats struct {
	AcSubmissionNum    []RawSubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []RawSubmissionCount `json:"totalSubmissionNum"`
}

type RawSubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type RawBadge struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Icon         string `json:"icon"`
	CreationDate int64  `json:"creationDate"`
}

type RawUpcomingBadge struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type RawContestRanking struct {
	AttendedContestsCount int              `json:"attendedContestsCount"`
	Rating                float64          `json:"rating"`
	GlobalRanking         int              `json:"globalRanking"`
	TotalParticipants     int              `json:"totalParticipants"`
	TopPercentage         float64          `json:"topPercentage"`
	Badge                 *RawContestBadge `json:"badge"`
}

type RawContestBadge struct {
	Name string `json:"name"`
}

type RawContestHistoryEntry struct {
	Attended            bool           `json:"attended"`
	Rating              float64        `json:"rating"`
	Ranking             int            `json:"ranking"`
	TrendDirection      string         `json:"trendDirection"`
	ProblemsSolved      int            `json:"problemsSolved"`
	TotalProblems       int            `json:"totalProblems"`
	FinishTimeInSeconds int            `json:"finishTimeInSeconds"`
	Contest             RawContestInfo `json:"contest"`
}

type RawContestInfo struct {
	Title     string `json:"title"`
	StartTime int64  `json:"startTime"`
}

// RawRecentSubmission keeps the timestamp as the string upstream sends.
type RawRecentSubmission struct {
	Title         string `json:"title"`
	TitleSlug     string `json:"titleSlug"`
	Timestamp     string `json:"timestamp"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
}

// ParseSubmissionCalendar decodes the JSON-encoded calendar string into a map
// of day timestamps to submission counts for that day.
func ParseSubmissionCalendar(raw *string) (map[string]int, error) {
	if raw == nil {
		return nil, errors.New("missing submissionCalendar in response")
	}
	calendar := map[string]int{}
	if err := json.Unmarshal([]byte(*raw), &calendar); err != nil {
		return nil, fmt.Errorf("malformed submissionCalendar: %w", err)
	}
	return calendar, nil
}
