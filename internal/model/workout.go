package model

import "time"

type Workout struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	WorkoutType    string    `db:"workout_type" json:"workout_type"`
	Duration       int       `db:"duration" json:"duration"` // minutes
	CaloriesBurned int       `db:"calories_burned" json:"calories_burned"`
	CompletedAt    time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
