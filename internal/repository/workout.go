package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/db"
	"github.com/templui/fitshare/internal/model"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

type WorkoutRepository interface {
	Log(ctx context.Context, workout *model.Workout) (*model.Statistics, error)
	ByID(ctx context.Context, userID, workoutID string) (*model.Workout, error)
	History(ctx context.Context, userID string, limit int) ([]*model.Workout, error)
}

type workoutRepository struct {
	db *sqlx.DB
}

func NewWorkoutRepository(db *sqlx.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// Log stores the workout and folds it into the user's statistics in the
// same transaction.
func (r *workoutRepository) Log(ctx context.Context, workout *model.Workout) (*model.Statistics, error) {
	var stats model.Statistics

	err := db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO workout_history (id, user_id, workout_type, duration, calories_burned, completed_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			workout.ID,
			workout.UserID,
			workout.WorkoutType,
			workout.Duration,
			workout.CaloriesBurned,
			workout.CompletedAt,
			workout.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert workout: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_statistics (id, user_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO NOTHING`,
			uuid.New().String(), workout.UserID, workout.CreatedAt, workout.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to ensure statistics: %w", err)
		}

		// Touch first so the row is write-locked before it is read
		_, err = tx.ExecContext(ctx, `UPDATE user_statistics SET updated_at = $1 WHERE user_id = $2`,
			workout.CreatedAt, workout.UserID)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &stats, `SELECT * FROM user_statistics WHERE user_id = $1`, workout.UserID)
		if err != nil {
			return err
		}

		stats.Apply(workout.Duration, workout.CaloriesBurned, workout.CompletedAt)

		_, err = tx.ExecContext(ctx, `
			UPDATE user_statistics
			SET total_workouts = $1, total_calories_burned = $2, total_workout_time = $3,
			    longest_streak = $4, current_streak = $5, last_workout_date = $6
			WHERE user_id = $7`,
			stats.TotalWorkouts,
			stats.TotalCaloriesBurned,
			stats.TotalWorkoutTime,
			stats.LongestStreak,
			stats.CurrentStreak,
			stats.LastWorkoutDate,
			workout.UserID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *workoutRepository) ByID(ctx context.Context, userID, workoutID string) (*model.Workout, error) {
	workout := &model.Workout{}
	query := `SELECT * FROM workout_history WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, workout, query, workoutID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	return workout, nil
}

func (r *workoutRepository) History(ctx context.Context, userID string, limit int) ([]*model.Workout, error) {
	workouts := []*model.Workout{}
	query := `SELECT * FROM workout_history WHERE user_id = $1 ORDER BY completed_at DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &workouts, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return workouts, nil
}
