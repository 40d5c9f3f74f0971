package model

import "time"

type Statistics struct {
	ID                  string     `db:"id" json:"id"`
	UserID              string     `db:"user_id" json:"user_id"`
	TotalWorkouts       int        `db:"total_workouts" json:"total_workouts"`
	TotalCaloriesBurned int        `db:"total_calories_burned" json:"total_calories_burned"`
	TotalWorkoutTime    int        `db:"total_workout_time" json:"total_workout_time"` // minutes
	LongestStreak       int        `db:"longest_streak" json:"longest_streak"`
	CurrentStreak       int        `db:"current_streak" json:"current_streak"`
	LastWorkoutDate     *time.Time `db:"last_workout_date" json:"last_workout_date,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

// Apply folds one workout completed at completedAt into the counters.
// Streaks count consecutive UTC calendar days; a second workout on the
// same day leaves them unchanged and an older workout never resets them.
func (s *Statistics) Apply(duration, calories int, completedAt time.Time) {
	s.TotalWorkouts++
	s.TotalCaloriesBurned += calories
	s.TotalWorkoutTime += duration

	day := truncateDay(completedAt)

	switch {
	case s.LastWorkoutDate == nil:
		s.CurrentStreak = 1
		s.LastWorkoutDate = &day
	case day.After(truncateDay(*s.LastWorkoutDate)):
		if day.Equal(truncateDay(*s.LastWorkoutDate).AddDate(0, 0, 1)) {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		s.LastWorkoutDate = &day
	case s.CurrentStreak == 0:
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
