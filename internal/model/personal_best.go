package model

import "time"

type PersonalBest struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	ExerciseName string    `db:"exercise_name" json:"exercise_name"`
	Weight       float64   `db:"weight" json:"weight"`
	Reps         int       `db:"reps" json:"reps"`
	DateAchieved time.Time `db:"date_achieved" json:"date_achieved"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
