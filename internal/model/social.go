package model

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"
)

var Visibilities = []string{
	VisibilityPublic,
	VisibilityFriends,
	VisibilityPrivate,
}

const (
	CaptionMaxLength = 500
	CommentMaxLength = 1000
)

// SharedWorkout publishes a WorkoutHistory row. LikesCount and
// CommentsCount mirror the number of WorkoutLike and WorkoutComment rows.
type SharedWorkout struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	WorkoutHistoryID string    `db:"workout_history_id" json:"workout_history_id"`
	Caption          string    `db:"caption" json:"caption"`
	Visibility       string    `db:"visibility" json:"visibility"`
	LikesCount       int       `db:"likes_count" json:"likes_count"`
	CommentsCount    int       `db:"comments_count" json:"comments_count"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type WorkoutLike struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	SharedWorkoutID string    `db:"shared_workout_id" json:"shared_workout_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type WorkoutComment struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	SharedWorkoutID string    `db:"shared_workout_id" json:"shared_workout_id"`
	Comment         string    `db:"comment" json:"comment"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`

	// Joined from profiles/users (not in workout_comments)
	UserName string `db:"user_name" json:"user_name"`
}
