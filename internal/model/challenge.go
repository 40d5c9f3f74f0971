package model

import "time"

type ChallengeProgress struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	ChallengeName string    `db:"challenge_name" json:"challenge_name"`
	Duration      int       `db:"duration" json:"duration"` // seconds
	Distance      *float64  `db:"distance" json:"distance,omitempty"`
	Speed         *float64  `db:"speed" json:"speed,omitempty"`
	CompletedAt   time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
