package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/model"
)

var (
	ErrPersonalBestNotFound = errors.New("personal best not found")
)

type PersonalBestRepository interface {
	Create(ctx context.Context, best *model.PersonalBest) error
	Update(ctx context.Context, best *model.PersonalBest) error
	ByExercise(ctx context.Context, userID, exerciseName string) (*model.PersonalBest, error)
	Bests(ctx context.Context, userID string) ([]*model.PersonalBest, error)
}

type personalBestRepository struct {
	db *sqlx.DB
}

func NewPersonalBestRepository(db *sqlx.DB) PersonalBestRepository {
	return &personalBestRepository{db: db}
}

func (r *personalBestRepository) Create(ctx context.Context, best *model.PersonalBest) error {
	query := `INSERT INTO personal_bests (id, user_id, exercise_name, weight, reps, date_achieved, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		best.ID,
		best.UserID,
		best.ExerciseName,
		best.Weight,
		best.Reps,
		best.DateAchieved,
		best.CreatedAt,
		best.UpdatedAt,
	)

	return mapWriteErr(err, "(user_id, exercise_name)")
}

func (r *personalBestRepository) Update(ctx context.Context, best *model.PersonalBest) error {
	query := `UPDATE personal_bests
	          SET weight = $1, reps = $2, date_achieved = $3, updated_at = $4
	          WHERE user_id = $5 AND exercise_name = $6`

	result, err := r.db.ExecContext(ctx, query,
		best.Weight,
		best.Reps,
		best.DateAchieved,
		best.UpdatedAt,
		best.UserID,
		best.ExerciseName,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPersonalBestNotFound
	}

	return nil
}

func (r *personalBestRepository) ByExercise(ctx context.Context, userID, exerciseName string) (*model.PersonalBest, error) {
	best := &model.PersonalBest{}
	query := `SELECT * FROM personal_bests WHERE user_id = $1 AND exercise_name = $2`

	err := r.db.GetContext(ctx, best, query, userID, exerciseName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonalBestNotFound
	}
	if err != nil {
		return nil, err
	}

	return best, nil
}

func (r *personalBestRepository) Bests(ctx context.Context, userID string) ([]*model.PersonalBest, error) {
	bests := []*model.PersonalBest{}
	query := `SELECT * FROM personal_bests WHERE user_id = $1 ORDER BY LOWER(exercise_name) ASC`

	err := r.db.SelectContext(ctx, &bests, query, userID)
	if err != nil {
		return nil, err
	}

	return bests, nil
}
