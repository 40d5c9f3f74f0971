package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/model"
)

var (
	ErrNutritionNotFound = errors.New("daily nutrition not found")
)

type NutritionRepository interface {
	Create(ctx context.Context, entry *model.DailyNutrition) error
	UpdateConsumed(ctx context.Context, userID, date string, consumed int) (*model.DailyNutrition, error)
	ByDate(ctx context.Context, userID, date string) (*model.DailyNutrition, error)
	Range(ctx context.Context, userID, from, to string) ([]*model.DailyNutrition, error)
}

type nutritionRepository struct {
	db *sqlx.DB
}

func NewNutritionRepository(db *sqlx.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) Create(ctx context.Context, entry *model.DailyNutrition) error {
	query := `INSERT INTO daily_nutrition (id, user_id, date, target_calories, consumed_calories, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.TargetCalories,
		entry.ConsumedCalories,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return mapWriteErr(err, "(user_id, date)")
}

func (r *nutritionRepository) UpdateConsumed(ctx context.Context, userID, date string, consumed int) (*model.DailyNutrition, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE daily_nutrition SET consumed_calories = $1, updated_at = $2
		WHERE user_id = $3 AND date = $4`,
		consumed, time.Now().UTC(), userID, date,
	)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNutritionNotFound
	}

	return r.ByDate(ctx, userID, date)
}

func (r *nutritionRepository) ByDate(ctx context.Context, userID, date string) (*model.DailyNutrition, error) {
	entry := &model.DailyNutrition{}
	query := `SELECT * FROM daily_nutrition WHERE user_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, entry, query, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNutritionNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Range returns the entries with from <= date <= to, oldest first.
// Dates are YYYY-MM-DD so text ordering is calendar ordering.
func (r *nutritionRepository) Range(ctx context.Context, userID, from, to string) ([]*model.DailyNutrition, error) {
	entries := []*model.DailyNutrition{}
	query := `SELECT * FROM daily_nutrition WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC`

	err := r.db.SelectContext(ctx, &entries, query, userID, from, to)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
