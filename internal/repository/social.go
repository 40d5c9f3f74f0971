package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/db"
	"github.com/templui/fitshare/internal/model"
)

var (
	ErrSharedWorkoutNotFound = errors.New("shared workout not found")
)

// SocialRepository owns shared workouts and their likes and comments.
// Every write that adds or removes a like or comment changes the matching
// counter in the same transaction, using a relative update.
type SocialRepository interface {
	CreateShared(ctx context.Context, shared *model.SharedWorkout) error
	SharedByID(ctx context.Context, id string) (*model.SharedWorkout, error)
	SharedByUser(ctx context.Context, viewerID, userID string, limit int) ([]*model.SharedWorkout, error)
	SharedByVisibility(ctx context.Context, visibility string, limit int) ([]*model.SharedWorkout, error)

	Like(ctx context.Context, like *model.WorkoutLike) error
	Unlike(ctx context.Context, userID, sharedWorkoutID string) (bool, error)
	HasLiked(ctx context.Context, userID, sharedWorkoutID string) (bool, error)

	AddComment(ctx context.Context, comment *model.WorkoutComment) error
	Comments(ctx context.Context, sharedWorkoutID string) ([]*model.WorkoutComment, error)

	Reconcile(ctx context.Context, sharedWorkoutID string) (before, after *model.SharedWorkout, err error)
}

type socialRepository struct {
	db *sqlx.DB
}

func NewSocialRepository(db *sqlx.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) CreateShared(ctx context.Context, shared *model.SharedWorkout) error {
	query := `INSERT INTO shared_workouts (
	              id, user_id, workout_history_id, caption, visibility,
	              likes_count, comments_count, created_at, updated_at
	          ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		shared.ID,
		shared.UserID,
		shared.WorkoutHistoryID,
		shared.Caption,
		shared.Visibility,
		shared.LikesCount,
		shared.CommentsCount,
		shared.CreatedAt,
		shared.UpdatedAt,
	)

	return err
}

func (r *socialRepository) SharedByID(ctx context.Context, id string) (*model.SharedWorkout, error) {
	return sharedByID(ctx, r.db, id)
}

func sharedByID(ctx context.Context, q sqlx.QueryerContext, id string) (*model.SharedWorkout, error) {
	shared := &model.SharedWorkout{}
	err := sqlx.GetContext(ctx, q, shared, `SELECT * FROM shared_workouts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSharedWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	return shared, nil
}

// SharedByUser lists userID's shares newest first. Private shares are only
// included when the viewer is the owner, before the limit applies.
func (r *socialRepository) SharedByUser(ctx context.Context, viewerID, userID string, limit int) ([]*model.SharedWorkout, error) {
	shared := []*model.SharedWorkout{}
	query := `SELECT * FROM shared_workouts
	          WHERE user_id = $1 AND (visibility <> $2 OR user_id = $3)
	          ORDER BY created_at DESC LIMIT $4`

	err := r.db.SelectContext(ctx, &shared, query, userID, model.VisibilityPrivate, viewerID, limit)
	if err != nil {
		return nil, err
	}

	return shared, nil
}

func (r *socialRepository) SharedByVisibility(ctx context.Context, visibility string, limit int) ([]*model.SharedWorkout, error) {
	shared := []*model.SharedWorkout{}
	query := `SELECT * FROM shared_workouts WHERE visibility = $1 ORDER BY created_at DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &shared, query, visibility, limit)
	if err != nil {
		return nil, err
	}

	return shared, nil
}

// Like bumps likes_count before inserting the like row: the update locks
// the shared workout for concurrent likers, and a duplicate like rolls the
// increment back with the failed insert.
func (r *socialRepository) Like(ctx context.Context, like *model.WorkoutLike) error {
	return db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := bumpCounter(ctx, tx, "likes_count", like.SharedWorkoutID, like.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_likes (id, user_id, shared_workout_id, created_at)
			VALUES ($1, $2, $3, $4)`,
			like.ID, like.UserID, like.SharedWorkoutID, like.CreatedAt,
		)
		return mapWriteErr(err, "(user_id, shared_workout_id)")
	})
}

// Unlike reports whether a like was removed. The counter only moves when
// a row was deleted and never drops below zero.
func (r *socialRepository) Unlike(ctx context.Context, userID, sharedWorkoutID string) (bool, error) {
	removed := false

	err := db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM workout_likes WHERE user_id = $1 AND shared_workout_id = $2`,
			userID, sharedWorkoutID,
		)
		if err != nil {
			return err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE shared_workouts
			SET likes_count = CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END, updated_at = $1
			WHERE id = $2`,
			time.Now().UTC(), sharedWorkoutID,
		)
		if err != nil {
			return err
		}

		removed = true
		return nil
	})

	return removed, err
}

func (r *socialRepository) HasLiked(ctx context.Context, userID, sharedWorkoutID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM workout_likes WHERE user_id = $1 AND shared_workout_id = $2`,
		userID, sharedWorkoutID,
	)
	return count > 0, err
}

// AddComment stores the comment and fills in the commenter's name the same
// way Comments does.
func (r *socialRepository) AddComment(ctx context.Context, comment *model.WorkoutComment) error {
	return db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := bumpCounter(ctx, tx, "comments_count", comment.SharedWorkoutID, comment.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_comments (id, user_id, shared_workout_id, comment, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			comment.ID, comment.UserID, comment.SharedWorkoutID, comment.Comment, comment.CreatedAt,
		)
		if err != nil {
			return err
		}

		return tx.GetContext(ctx, &comment.UserName, `
			SELECT COALESCE(NULLIF(p.display_name, ''), u.email)
			FROM users u
			LEFT JOIN user_profiles p ON p.user_id = u.id
			WHERE u.id = $1`,
			comment.UserID,
		)
	})
}

// Comments lists newest first, naming each commenter by profile display
// name or, without a profile, by email.
func (r *socialRepository) Comments(ctx context.Context, sharedWorkoutID string) ([]*model.WorkoutComment, error) {
	comments := []*model.WorkoutComment{}
	query := `
		SELECT c.id, c.user_id, c.shared_workout_id, c.comment, c.created_at,
		       COALESCE(NULLIF(p.display_name, ''), u.email) AS user_name
		FROM workout_comments c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN user_profiles p ON p.user_id = c.user_id
		WHERE c.shared_workout_id = $1
		ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &comments, query, sharedWorkoutID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// Reconcile recomputes both counters from the like and comment rows and
// returns the row as it was before and after the repair.
func (r *socialRepository) Reconcile(ctx context.Context, sharedWorkoutID string) (*model.SharedWorkout, *model.SharedWorkout, error) {
	var before, after *model.SharedWorkout

	err := db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		before, err = sharedByID(ctx, tx, sharedWorkoutID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE shared_workouts SET
				likes_count = (SELECT COUNT(*) FROM workout_likes WHERE shared_workout_id = $1),
				comments_count = (SELECT COUNT(*) FROM workout_comments WHERE shared_workout_id = $2),
				updated_at = $3
			WHERE id = $4`,
			sharedWorkoutID, sharedWorkoutID, time.Now().UTC(), sharedWorkoutID,
		)
		if err != nil {
			return fmt.Errorf("failed to recompute counters: %w", err)
		}

		after, err = sharedByID(ctx, tx, sharedWorkoutID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return before, after, nil
}

// bumpCounter increments a counter column on shared_workouts, failing with
// ErrSharedWorkoutNotFound when the row does not exist.
func bumpCounter(ctx context.Context, tx *sqlx.Tx, column, sharedWorkoutID string, at time.Time) error {
	query := fmt.Sprintf(`UPDATE shared_workouts SET %s = %s + 1, updated_at = $1 WHERE id = $2`, column, column)

	result, err := tx.ExecContext(ctx, query, at, sharedWorkoutID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSharedWorkoutNotFound
	}

	return nil
}
