package service

import (
	"context"

	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
)

type StatisticsService struct {
	repo repository.StatisticsRepository
}

func NewStatisticsService(repo repository.StatisticsRepository) *StatisticsService {
	return &StatisticsService{repo: repo}
}

func (s *StatisticsService) ByUserID(ctx context.Context, userID string) (*model.Statistics, error) {
	return s.repo.ByUserID(ctx, userID)
}
