package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/model"
)

type StatisticsRepository interface {
	ByUserID(ctx context.Context, userID string) (*model.Statistics, error)
}

type statisticsRepository struct {
	db *sqlx.DB
}

func NewStatisticsRepository(db *sqlx.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// ByUserID returns zeroed counters for users who never logged a workout.
func (r *statisticsRepository) ByUserID(ctx context.Context, userID string) (*model.Statistics, error) {
	var stats model.Statistics
	err := r.db.GetContext(ctx, &stats, `SELECT * FROM user_statistics WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.Statistics{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
