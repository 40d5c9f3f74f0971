package model

import "time"

// DateLayout is the calendar-day format used for nutrition dates.
const DateLayout = "2006-01-02"

type DailyNutrition struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	Date             string    `db:"date" json:"date"`
	TargetCalories   int       `db:"target_calories" json:"target_calories"`
	ConsumedCalories int       `db:"consumed_calories" json:"consumed_calories"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Remaining is the calorie budget left for the day; negative when over.
func (n *DailyNutrition) Remaining() int {
	return n.TargetCalories - n.ConsumedCalories
}
