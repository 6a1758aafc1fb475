package service

import (
	"context"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/logger"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/stats/dto"
)

type StatsService interface {
	GetUserStats(ctx context.Context, username string) dto.StatsResponse
}

type statsService struct {
	client leetcode.Fetcher
}

func NewStatsService(client leetcode.Fetcher) StatsService {
	return &statsService{client: client}
}

// GetUserStats fetches and decodes the stats query. Failures are folded into
// the error envelope; the handler always has something to serialize.
func (s *statsService) GetUserStats(ctx context.Context, username string) dto.StatsResponse {
	data, err := s.client.Fetch(ctx, leetcode.QueryUserStats, username)
	if err != nil {
		logger.Error("stats fetch for %q failed: %v", username, err)
		return dto.ErrorStatsResponse("error", err.Error())
	}
	return DecodeStats(data)
}
