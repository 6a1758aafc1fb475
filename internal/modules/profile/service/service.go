package service

import (
	"context"

	"github.com/tashifkhan/LeetCode-Stats-API/internal/leetcode"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/logger"
	"github.com/tashifkhan/LeetCode-Stats-API/internal/modules/profile/dto"
)

type ProfileService interface {
	GetUserProfile(ctx context.Context, username string) dto.ProfileResponse
}

type profileService struct {
	client leetcode.Fetcher
}

func NewProfileService(client leetcode.Fetcher) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) GetUserProfile(ctx context.Context, username string) dto.ProfileResponse {
	data, err := s.client.Fetch(ctx, leetcode.QueryUserProfile, username)
	if err != nil {
		logger.Error("profile fetch for %q failed: %v", username, err)
		return dto.ErrorProfileResponse("error", err.Error())
	}
	return DecodeProfile(data)
}
