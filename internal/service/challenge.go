package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/validation"
)

type ChallengeService struct {
	repo repository.ChallengeRepository
}

func NewChallengeService(repo repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{repo: repo}
}

func (s *ChallengeService) Record(ctx context.Context, progress *model.ChallengeProgress) error {
	progress.ChallengeName = strings.TrimSpace(progress.ChallengeName)

	err := validation.First(
		validation.Required("challenge_name", progress.ChallengeName),
		validation.MaxLength("challenge_name", progress.ChallengeName, 100),
		validation.Positive("duration", progress.Duration),
		positiveFloat("distance", progress.Distance),
		positiveFloat("speed", progress.Speed),
	)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	progress.ID = uuid.New().String()
	progress.CreatedAt = now
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = now
	}
	progress.CompletedAt = progress.CompletedAt.UTC()

	err = s.repo.Create(ctx, progress)
	if err != nil {
		return fmt.Errorf("failed to record challenge: %w", err)
	}

	return nil
}

func (s *ChallengeService) Progress(ctx context.Context, userID string) ([]*model.ChallengeProgress, error) {
	return s.repo.Progress(ctx, userID)
}
