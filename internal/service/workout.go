package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/validation"
)

type WorkoutService struct {
	repo repository.WorkoutRepository
}

func NewWorkoutService(repo repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// Log records a finished workout and returns the user's updated
// statistics. A zero completedAt means now.
func (s *WorkoutService) Log(ctx context.Context, userID, workoutType string, duration, calories int, completedAt time.Time) (*model.Workout, *model.Statistics, error) {
	err := validation.First(
		validation.Required("workout_type", workoutType),
		validation.MaxLength("workout_type", workoutType, 100),
		validation.Positive("duration", duration),
		validation.NonNegative("calories_burned", calories),
	)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	if completedAt.IsZero() {
		completedAt = now
	}

	workout := &model.Workout{
		ID:             uuid.New().String(),
		UserID:         userID,
		WorkoutType:    workoutType,
		Duration:       duration,
		CaloriesBurned: calories,
		CompletedAt:    completedAt.UTC(),
		CreatedAt:      now,
	}

	stats, err := s.repo.Log(ctx, workout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log workout: %w", err)
	}

	return workout, stats, nil
}

func (s *WorkoutService) History(ctx context.Context, userID string, limit int) ([]*model.Workout, error) {
	return s.repo.History(ctx, userID, clampLimit(limit))
}
