package service_test

import (
	"testing"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/service"
)

func TestDecodeBadges(t *testing.T) {
	data := &leetcode.RawData{
		MatchedUser: &leetcode.RawMatchedUser{
			Badges: []leetcode.RawBadge{
				{ID: "1", DisplayName: "Problem Solver", Icon: "icon-url", CreationDate: 1609459200},
				{ID: "2", DisplayName: "Annual Badge", Icon: "annual-url", CreationDate: 1640995200},
			},
			UpcomingBadges: []leetcode.RawUpcomingBadge{
				{Name: "Fast Coder", Icon: "upcoming-url"},
			},
			ActiveBadge: &leetcode.RawBadge{ID: "2", DisplayName: "Annual Badge", Icon: "annual-url", CreationDate: 1640995200},
		},
	}

	resp := service.DecodeBadges(data)
	if resp.Status != "success" || resp.Message != "retrieved" {
		t.Fatalf("envelope = %s/%s", resp.Status, resp.Message)
	}
	if len(resp.Badges) != 2 || resp.Badges[1].ID != "2" {
		t.Errorf("badges = %+v", resp.Badges)
	}
	if len(resp.UpcomingBadges) != 1 || resp.UpcomingBadges[0].Name != "Fast Coder" {
		t.Errorf("upcomingBadges = %+v", resp.UpcomingBadges)
	}
	if resp.ActiveBadge == nil || resp.ActiveBadge.DisplayName != "Annual Badge" {
		t.Errorf("activeBadge = %+v", resp.ActiveBadge)
	}
}

func TestDecodeBadgesEmptyCollections(t *testing.T) {
	resp := service.DecodeBadges(&leetcode.RawData{MatchedUser: &leetcode.RawMatchedUser{}})

	if resp.Status != "success" {
		t.Fatalf("status = %s, message = %s", resp.Status, resp.Message)
	}
	if resp.Badges == nil || len(resp.Badges) != 0 {
		t.Errorf("badges = %v, want empty slice", resp.Badges)
	}
	if resp.UpcomingBadges == nil || len(resp.UpcomingBadges) != 0 {
		t.Errorf("upcomingBadges = %v, want empty slice", resp.UpcomingBadges)
	}
	if resp.ActiveBadge != nil {
		t.Errorf("activeBadge = %+v, want nil", resp.ActiveBadge)
	}
}

func TestDecodeBadgesMissingMatchedUser(t *testing.T) {
	resp := service.DecodeBadges(&leetcode.RawData{})

	if resp.Status != "error" {
		t.Fatalf("status = %s", resp.Status)
	}
	if len(resp.Badges) != 0 || len(resp.UpcomingBadges) != 0 || resp.ActiveBadge != nil {
		t.Errorf("error envelope carries data: %+v", resp)
	}
}
