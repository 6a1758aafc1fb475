package dto

import commonDto "github.com/tashifkhan/LeetCode-Stats-API/pkg/dto"

type BadgesResponse struct {
	Status         string                    `json:"status"`
	Message        string                    `json:"message"`
	Badges         []commonDto.Badge         `json:"badges"`
	UpcomingBadges []commonDto.UpcomingBadge `json:"upcomingBadges"`
	ActiveBadge    *commonDto.Badge          `json:"activeBadge"`
}

// ErrorBadgesResponse fills every non-status field with its zero default so
// error replies never carry partial data.
func ErrorBadgesResponse(status, message string) BadgesResponse {
	return BadgesResponse{
		Status:         status,
		Message:        message,
		Badges:         []commonDto.Badge{},
		UpcomingBadges: []commonDto.UpcomingBadge{},
	}
}
