package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/model"
)

type ProfileRepository interface {
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, `SELECT * FROM user_profiles WHERE user_id = $1`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert keeps one profile per user: the first write inserts, later
// writes replace every editable column.
func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	now := time.Now().UTC()
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (
			id, user_id, display_name, avatar_initial, height, weight, age,
			workout_split, include_cardio, cardio_type, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = excluded.display_name,
			avatar_initial = excluded.avatar_initial,
			height = excluded.height,
			weight = excluded.weight,
			age = excluded.age,
			workout_split = excluded.workout_split,
			include_cardio = excluded.include_cardio,
			cardio_type = excluded.cardio_type,
			updated_at = excluded.updated_at
	`,
		profile.ID,
		profile.UserID,
		profile.DisplayName,
		profile.AvatarInitial,
		profile.Height,
		profile.Weight,
		profile.Age,
		profile.WorkoutSplit,
		profile.IncludeCardio,
		profile.CardioType,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}

	// Reload so ID/CreatedAt reflect the surviving row on update
	stored, err := r.ByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	*profile = *stored

	return nil
}
