package model

import (
	"time"
)

const (
	GoalTypeDecreaseWeight = "decrease_weight"
	GoalTypeMaintainHealth = "maintain_health"
	GoalTypeIncreaseMuscle = "increase_muscle"
)

var GoalTypes = []string{
	GoalTypeDecreaseWeight,
	GoalTypeMaintainHealth,
	GoalTypeIncreaseMuscle,
}

// DefaultTargetCalories applies to goals and daily nutrition when the
// client leaves the target unset.
const DefaultTargetCalories = 1900

type Goal struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	GoalType       string    `db:"goal_type" json:"goal_type"`
	TargetCalories int       `db:"target_calories" json:"target_calories"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
