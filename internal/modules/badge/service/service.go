package service

import (
	"context"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/logger"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/badge/dto"
)

type BadgeService interface {
	GetUserBadges(ctx context.Context, username string) dto.BadgesResponse
}

type badgeService struct {
	client leetcode.Fetcher
}

func NewBadgeService(client leetcode.Fetcher) BadgeService {
	return &badgeService{client: client}
}

func (s *badgeService) GetUserBadges(ctx context.Context, username string) dto.BadgesResponse {
	data, err := s.client.Fetch(ctx, leetcode.QueryUserBadges, username)
	if err != nil {
		logger.Error("badges fetch for %q failed: %v", username, err)
		return dto.ErrorBadgesResponse("error", err.Error())
	}
	return DecodeBadges(data)
}
