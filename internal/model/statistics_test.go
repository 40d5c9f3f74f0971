package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 18, 30, 0, 0, time.UTC)
}

func TestStatisticsApplyConsecutiveDays(t *testing.T) {
	s := &Statistics{}

	s.Apply(45, 300, day(1))
	s.Apply(30, 200, day(2))
	s.Apply(60, 500, day(3))

	assert.Equal(t, 3, s.TotalWorkouts)
	assert.Equal(t, 1000, s.TotalCaloriesBurned)
	assert.Equal(t, 135, s.TotalWorkoutTime)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
	require.NotNil(t, s.LastWorkoutDate)
	assert.Equal(t, 3, s.LastWorkoutDate.Day())
}

func TestStatisticsApplyGapResetsCurrentOnly(t *testing.T) {
	s := &Statistics{}

	s.Apply(30, 100, day(1))
	s.Apply(30, 100, day(2))
	s.Apply(30, 100, day(5))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak)
}

func TestStatisticsApplySameDayAndBackfill(t *testing.T) {
	s := &Statistics{}

	s.Apply(30, 100, day(10))
	s.Apply(20, 80, day(10).Add(2*time.Hour))
	s.Apply(20, 80, day(8))

	assert.Equal(t, 3, s.TotalWorkouts)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 10, s.LastWorkoutDate.Day())
}

func TestDailyNutritionRemaining(t *testing.T) {
	n := &DailyNutrition{TargetCalories: 1900, ConsumedCalories: 2100}
	assert.Equal(t, -200, n.Remaining())
}
