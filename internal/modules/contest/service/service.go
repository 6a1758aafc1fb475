package service

import (
	"context"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/logger"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/contest/dto"
)

type ContestService interface {
	GetContestRanking(ctx context.Context, username string) dto.ContestRankingResponse
}

type contestService struct {
	client leetcode.Fetcher
}

func NewContestService(client leetcode.Fetcher) ContestService {
	return &contestService{client: client}
}

func (s *contestService) GetContestRanking(ctx context.Context, username string) dto.ContestRankingResponse {
	data, err := s.client.Fetch(ctx, leetcode.QueryContestRanking, username)
	if err != nil {
		logger.Error("contest ranking fetch for %q failed: %v", username, err)
		return dto.ErrorContestRankingResponse("error", err.Error())
	}
	return DecodeContestRanking(data)
}
