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

type PersonalBestService struct {
	repo repository.PersonalBestRepository
}

func NewPersonalBestService(repo repository.PersonalBestRepository) *PersonalBestService {
	return &PersonalBestService{repo: repo}
}

// Create stores the first record for an exercise. Later records go
// through Improve.
func (s *PersonalBestService) Create(ctx context.Context, userID, exercise string, weight float64, reps int, achieved time.Time) (*model.PersonalBest, error) {
	exercise = strings.TrimSpace(exercise)

	err := validatePersonalBest(exercise, weight, reps)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if achieved.IsZero() {
		achieved = now
	}

	best := &model.PersonalBest{
		ID:           uuid.New().String(),
		UserID:       userID,
		ExerciseName: exercise,
		Weight:       weight,
		Reps:         reps,
		DateAchieved: achieved.UTC(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(ctx, best)
	if err != nil {
		return nil, fmt.Errorf("failed to create personal best: %w", err)
	}

	return best, nil
}

// Improve overwrites the stored record for an existing exercise.
func (s *PersonalBestService) Improve(ctx context.Context, userID, exercise string, weight float64, reps int, achieved time.Time) (*model.PersonalBest, error) {
	exercise = strings.TrimSpace(exercise)

	err := validatePersonalBest(exercise, weight, reps)
	if err != nil {
		return nil, err
	}

	best, err := s.repo.ByExercise(ctx, userID, exercise)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if achieved.IsZero() {
		achieved = now
	}

	best.Weight = weight
	best.Reps = reps
	best.DateAchieved = achieved.UTC()
	best.UpdatedAt = now

	err = s.repo.Update(ctx, best)
	if err != nil {
		return nil, fmt.Errorf("failed to update personal best: %w", err)
	}

	return best, nil
}

func (s *PersonalBestService) Bests(ctx context.Context, userID string) ([]*model.PersonalBest, error) {
	return s.repo.Bests(ctx, userID)
}

func validatePersonalBest(exercise string, weight float64, reps int) error {
	err := validation.First(
		validation.Required("exercise_name", exercise),
		validation.MaxLength("exercise_name", exercise, 100),
		validation.Positive("reps", reps),
	)
	if err != nil {
		return err
	}
	if weight < 0 {
		return validation.Invalid("weight", "must not be negative")
	}
	return nil
}
