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

type NutritionService struct {
	repo repository.NutritionRepository
}

func NewNutritionService(repo repository.NutritionRepository) *NutritionService {
	return &NutritionService{repo: repo}
}

// SaveDaily creates the user's entry for date. A second entry for the
// same day is a uniqueness conflict.
func (s *NutritionService) SaveDaily(ctx context.Context, userID, date string, targetCalories, consumedCalories int) (*model.DailyNutrition, error) {
	if targetCalories == 0 {
		targetCalories = model.DefaultTargetCalories
	}

	err := validation.First(
		validateDate(date),
		validation.Positive("target_calories", targetCalories),
		validation.NonNegative("consumed_calories", consumedCalories),
	)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &model.DailyNutrition{
		ID:               uuid.New().String(),
		UserID:           userID,
		Date:             date,
		TargetCalories:   targetCalories,
		ConsumedCalories: consumedCalories,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save daily nutrition: %w", err)
	}

	return entry, nil
}

func (s *NutritionService) UpdateConsumed(ctx context.Context, userID, date string, consumed int) (*model.DailyNutrition, error) {
	err := validation.First(
		validateDate(date),
		validation.NonNegative("consumed_calories", consumed),
	)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateConsumed(ctx, userID, date, consumed)
}

func (s *NutritionService) Daily(ctx context.Context, userID, date string) (*model.DailyNutrition, error) {
	err := validateDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.ByDate(ctx, userID, date)
}

// Weekly returns the entries for the seven days ending at endDate, oldest
// first. Days without an entry are absent.
func (s *NutritionService) Weekly(ctx context.Context, userID, endDate string) ([]*model.DailyNutrition, error) {
	if endDate == "" {
		endDate = time.Now().UTC().Format(model.DateLayout)
	}

	end, err := time.Parse(model.DateLayout, endDate)
	if err != nil {
		return nil, validation.Invalid("date", "must be formatted as YYYY-MM-DD")
	}

	from := end.AddDate(0, 0, -6).Format(model.DateLayout)
	return s.repo.Range(ctx, userID, from, endDate)
}

func validateDate(date string) error {
	if date == "" {
		return validation.Invalid("date", "is required")
	}
	_, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return validation.Invalid("date", "must be formatted as YYYY-MM-DD")
	}
	return nil
}
