package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/db"
	"github.com/templui/fitshare/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	Goals(ctx context.Context, userID string) ([]*model.Goal, error)
	Active(ctx context.Context, userID string) (*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Create stores the goal. An active goal retires the user's previous
// active goal in the same transaction, so at most one stays active.
func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	return db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if goal.IsActive {
			_, err := tx.ExecContext(ctx, `
				UPDATE user_goals SET is_active = $1, updated_at = $2
				WHERE user_id = $3 AND is_active = $4`,
				false, goal.CreatedAt, goal.UserID, true,
			)
			if err != nil {
				return fmt.Errorf("failed to deactivate previous goal: %w", err)
			}
		}

		query := `INSERT INTO user_goals (id, user_id, goal_type, target_calories, is_active, created_at, updated_at)
		          VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err := tx.ExecContext(ctx, query,
			goal.ID,
			goal.UserID,
			goal.GoalType,
			goal.TargetCalories,
			goal.IsActive,
			goal.CreatedAt,
			goal.UpdatedAt,
		)
		return mapWriteErr(err, "user_id (active goal)")
	})
}

func (r *goalRepository) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	goals := []*model.Goal{}
	query := `SELECT * FROM user_goals WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Active(ctx context.Context, userID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM user_goals WHERE user_id = $1 AND is_active = $2`

	err := r.db.GetContext(ctx, goal, query, userID, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}
