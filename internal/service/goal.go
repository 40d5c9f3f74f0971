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

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// Create stores a new active goal; the user's previous active goal is
// retired in the same write.
func (s *GoalService) Create(ctx context.Context, userID, goalType string, targetCalories int) (*model.Goal, error) {
	if targetCalories == 0 {
		targetCalories = model.DefaultTargetCalories
	}

	err := validation.First(
		validation.Required("goal_type", goalType),
		validation.OneOf("goal_type", goalType, model.GoalTypes),
		validation.Positive("target_calories", targetCalories),
	)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal := &model.Goal{
		ID:             uuid.New().String(),
		UserID:         userID,
		GoalType:       goalType,
		TargetCalories: targetCalories,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return s.repo.Goals(ctx, userID)
}

func (s *GoalService) Active(ctx context.Context, userID string) (*model.Goal, error) {
	return s.repo.Active(ctx, userID)
}
