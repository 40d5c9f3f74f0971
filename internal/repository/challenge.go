package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/model"
)

type ChallengeRepository interface {
	Create(ctx context.Context, progress *model.ChallengeProgress) error
	Progress(ctx context.Context, userID string) ([]*model.ChallengeProgress, error)
}

type challengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, progress *model.ChallengeProgress) error {
	query := `INSERT INTO challenge_progress (id, user_id, challenge_name, duration, distance, speed, completed_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		progress.ID,
		progress.UserID,
		progress.ChallengeName,
		progress.Duration,
		progress.Distance,
		progress.Speed,
		progress.CompletedAt,
		progress.CreatedAt,
	)

	return err
}

func (r *challengeRepository) Progress(ctx context.Context, userID string) ([]*model.ChallengeProgress, error) {
	entries := []*model.ChallengeProgress{}
	query := `SELECT * FROM challenge_progress WHERE user_id = $1 ORDER BY completed_at DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
