package service

import (
	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/dto"
	commonDto "github.com/tashifkhan/LeetCode-Stats-API/pkg/dto"
)

// DecodeBadges maps the badge portion of a matchedUser onto BadgesResponse.
func DecodeBadges(data *leetcode.RawData) dto.BadgesResponse {
	user := data.MatchedUser
	if user == nil {
		return dto.ErrorBadgesResponse("error", "missing matchedUser in response")
	}

	return dto.BadgesResponse{
		Status:         "success",
		Message:        "retrieved",
		Badges:         MapBadges(user.Badges),
		UpcomingBadges: MapUpcomingBadges(user.UpcomingBadges),
		ActiveBadge:    MapActiveBadge(user.ActiveBadge),
	}
}

// MapBadges converts raw earned badges, always yielding a non-nil slice.
func MapBadges(raw []leetcode.RawBadge) []commonDto.Badge {
	badges := make([]commonDto.Badge, 0, len(raw))
	for _, b := range raw {
		badges = append(badges, commonDto.Badge{
			ID:           b.ID,
			DisplayName:  b.DisplayName,
			Icon:         b.Icon,
			CreationDate: b.CreationDate,
		})
	}
	return badges
}

// MapUpcomingBadges converts raw upcoming badges, always yielding a non-nil
// slice.
func MapUpcomingBadges(raw []leetcode.RawUpcomingBadge) []commonDto.UpcomingBadge {
	badges := make([]commonDto.UpcomingBadge, 0, len(raw))
	for _, b := range raw {
		badges = append(badges, commonDto.UpcomingBadge{
			Name: b.Name,
			Icon: b.Icon,
		})
	}
	return badges
}

// MapActiveBadge converts the active badge; absent stays nil.
func MapActiveBadge(raw *leetcode.RawBadge) *commonDto.Badge {
	if raw == nil {
		return nil
	}
	return &commonDto.Badge{
		ID:           raw.ID,
		DisplayName:  raw.DisplayName,
		Icon:         raw.Icon,
		CreationDate: raw.CreationDate,
	}
}
