package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fitshare/internal/db"
	"github.com/templui/fitshare/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fitshare.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	database, err := db.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func seedUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{ID: uuid.New().String(), Email: email, CreatedAt: time.Now().UTC()}
	require.NoError(t, NewUserRepository(database).Create(context.Background(), user))
	return user
}

func seedShared(t *testing.T, database *sqlx.DB, owner *model.User) *model.SharedWorkout {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	workout := &model.Workout{
		ID:          uuid.New().String(),
		UserID:      owner.ID,
		WorkoutType: "push",
		Duration:    45,
		CompletedAt: now,
		CreatedAt:   now,
	}
	_, err := NewWorkoutRepository(database).Log(ctx, workout)
	require.NoError(t, err)

	shared := &model.SharedWorkout{
		ID:               uuid.New().String(),
		UserID:           owner.ID,
		WorkoutHistoryID: workout.ID,
		Visibility:       model.VisibilityFriends,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, NewSocialRepository(database).CreateShared(ctx, shared))
	return shared
}

func newLike(userID, sharedID string) *model.WorkoutLike {
	return &model.WorkoutLike{
		ID:              uuid.New().String(),
		UserID:          userID,
		SharedWorkoutID: sharedID,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestUserEmailIsUnique(t *testing.T) {
	database := newTestDB(t)
	seedUser(t, database, "a@example.com")

	dup := &model.User{ID: uuid.New().String(), Email: "a@example.com", CreatedAt: time.Now().UTC()}
	err := NewUserRepository(database).Create(context.Background(), dup)
	assert.ErrorIs(t, err, ErrUniquenessConflict)
}

func TestLikeTwiceConflictsAndKeepsCounter(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSocialRepository(database)

	owner := seedUser(t, database, "owner@example.com")
	fan := seedUser(t, database, "fan@example.com")
	shared := seedShared(t, database, owner)

	require.NoError(t, repo.Like(ctx, newLike(fan.ID, shared.ID)))

	err := repo.Like(ctx, newLike(fan.ID, shared.ID))
	require.ErrorIs(t, err, ErrUniquenessConflict)

	stored, err := repo.SharedByID(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikesCount)

	var rows int
	require.NoError(t, database.Get(&rows, `SELECT COUNT(*) FROM workout_likes WHERE shared_workout_id = $1`, shared.ID))
	assert.Equal(t, 1, rows)
}

func TestLikeUnknownSharedWorkout(t *testing.T) {
	database := newTestDB(t)
	fan := seedUser(t, database, "fan@example.com")

	err := NewSocialRepository(database).Like(context.Background(), newLike(fan.ID, uuid.New().String()))
	assert.ErrorIs(t, err, ErrSharedWorkoutNotFound)
}

func TestUnlikeIsIdempotentAndFloored(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSocialRepository(database)

	owner := seedUser(t, database, "owner@example.com")
	fan := seedUser(t, database, "fan@example.com")
	shared := seedShared(t, database, owner)

	require.NoError(t, repo.Like(ctx, newLike(fan.ID, shared.ID)))

	removed, err := repo.Unlike(ctx, fan.ID, shared.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Unlike(ctx, fan.ID, shared.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	stored, err := repo.SharedByID(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LikesCount)

	liked, err := repo.HasLiked(ctx, fan.ID, shared.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikesCountMatchesRowsAcrossSequence(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSocialRepository(database)

	owner := seedUser(t, database, "owner@example.com")
	shared := seedShared(t, database, owner)
	users := []*model.User{
		seedUser(t, database, "u1@example.com"),
		seedUser(t, database, "u2@example.com"),
		seedUser(t, database, "u3@example.com"),
	}

	ops := []struct {
		user int
		like bool
	}{
		{0, true}, {1, true}, {0, false}, {2, true}, {0, false}, {1, true}, {0, true}, {2, false},
	}
	for _, op := range ops {
		if op.like {
			_ = repo.Like(ctx, newLike(users[op.user].ID, shared.ID))
			continue
		}
		_, err := repo.Unlike(ctx, users[op.user].ID, shared.ID)
		require.NoError(t, err)
	}

	var rows int
	require.NoError(t, database.Get(&rows, `SELECT COUNT(*) FROM workout_likes WHERE shared_workout_id = $1`, shared.ID))

	stored, err := repo.SharedByID(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, rows, stored.LikesCount)
	assert.Equal(t, 2, rows)
}

func TestCommentsNewestFirstWithNames(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSocialRepository(database)

	owner := seedUser(t, database, "owner@example.com")
	named := seedUser(t, database, "named@example.com")
	anon := seedUser(t, database, "anon@example.com")
	shared := seedShared(t, database, owner)

	require.NoError(t, NewProfileRepository(database).Upsert(ctx, &model.Profile{
		UserID:       named.ID,
		DisplayName:  "Casey",
		WorkoutSplit: model.WorkoutSplitFullBody,
	}))

	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	texts := []string{"first", "second", "third"}
	names := []string{"Casey", "anon@example.com", "Casey"}
	for i, text := range texts {
		author := named
		if i == 1 {
			author = anon
		}
		comment := &model.WorkoutComment{
			ID:              uuid.New().String(),
			UserID:          author.ID,
			SharedWorkoutID: shared.ID,
			Comment:         text,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.AddComment(ctx, comment))
		assert.Equal(t, names[i], comment.UserName)
	}

	comments, err := repo.Comments(ctx, shared.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Comment)
	assert.Equal(t, "second", comments[1].Comment)
	assert.Equal(t, "first", comments[2].Comment)
	assert.Equal(t, "Casey", comments[0].UserName)
	assert.Equal(t, "anon@example.com", comments[1].UserName)

	stored, err := repo.SharedByID(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.CommentsCount)
}

func TestSharedByUserFiltersPrivateBeforeLimit(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSocialRepository(database)

	owner := seedUser(t, database, "owner@example.com")
	viewer := seedUser(t, database, "viewer@example.com")

	base := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	visibilities := []string{
		model.VisibilityPublic,
		model.VisibilityFriends,
		model.VisibilityPrivate,
		model.VisibilityPrivate,
	}
	for i, visibility := range visibilities {
		shared := seedShared(t, database, owner)
		_, err := database.Exec(`UPDATE shared_workouts SET visibility = $1, created_at = $2 WHERE id = $3`,
			visibility, base.Add(time.Duration(i)*time.Hour), shared.ID)
		require.NoError(t, err)
	}

	// The two newest shares are private.
	theirs, err := repo.SharedByUser(ctx, viewer.ID, owner.ID, 2)
	require.NoError(t, err)
	require.Len(t, theirs, 2)
	assert.Equal(t, model.VisibilityFriends, theirs[0].Visibility)
	assert.Equal(t, model.VisibilityPublic, theirs[1].Visibility)

	mine, err := repo.SharedByUser(ctx, owner.ID, owner.ID, 10)
	require.NoError(t, err)
	assert.Len(t, mine, 4)
	assert.Equal(t, model.VisibilityPrivate, mine[0].Visibility)
}

func TestReconcileRepairsDrift(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewSocialRepository(database)

	owner := seedUser(t, database, "owner@example.com")
	fan := seedUser(t, database, "fan@example.com")
	shared := seedShared(t, database, owner)
	require.NoError(t, repo.Like(ctx, newLike(fan.ID, shared.ID)))

	_, err := database.Exec(`UPDATE shared_workouts SET likes_count = 7, comments_count = 4 WHERE id = $1`, shared.ID)
	require.NoError(t, err)

	before, after, err := repo.Reconcile(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, before.LikesCount)
	assert.Equal(t, 1, after.LikesCount)
	assert.Equal(t, 0, after.CommentsCount)
}

func TestNutritionUniquePerDay(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewNutritionRepository(database)
	user := seedUser(t, database, "eater@example.com")

	entry := func() *model.DailyNutrition {
		now := time.Now().UTC()
		return &model.DailyNutrition{
			ID:             uuid.New().String(),
			UserID:         user.ID,
			Date:           "2026-05-01",
			TargetCalories: model.DefaultTargetCalories,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	require.NoError(t, repo.Create(ctx, entry()))
	assert.ErrorIs(t, repo.Create(ctx, entry()), ErrUniquenessConflict)

	updated, err := repo.UpdateConsumed(ctx, user.ID, "2026-05-01", 1200)
	require.NoError(t, err)
	assert.Equal(t, 1200, updated.ConsumedCalories)

	_, err = repo.ByDate(ctx, user.ID, "2026-05-02")
	assert.ErrorIs(t, err, ErrNutritionNotFound)
}

func TestPersonalBestUniquePerExercise(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewPersonalBestRepository(database)
	user := seedUser(t, database, "lifter@example.com")

	best := func(weight float64) *model.PersonalBest {
		now := time.Now().UTC()
		return &model.PersonalBest{
			ID:           uuid.New().String(),
			UserID:       user.ID,
			ExerciseName: "bench press",
			Weight:       weight,
			Reps:         1,
			DateAchieved: now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	require.NoError(t, repo.Create(ctx, best(100)))
	assert.ErrorIs(t, repo.Create(ctx, best(105)), ErrUniquenessConflict)

	require.NoError(t, repo.Update(ctx, best(110)))
	stored, err := repo.ByExercise(ctx, user.ID, "bench press")
	require.NoError(t, err)
	assert.InDelta(t, 110.0, stored.Weight, 0.001)
}

func TestGoalCreateKeepsOneActive(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewGoalRepository(database)
	user := seedUser(t, database, "goal@example.com")

	base := time.Now().UTC()
	for i, goalType := range []string{model.GoalTypeDecreaseWeight, model.GoalTypeIncreaseMuscle} {
		at := base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, &model.Goal{
			ID:             uuid.New().String(),
			UserID:         user.ID,
			GoalType:       goalType,
			TargetCalories: model.DefaultTargetCalories,
			IsActive:       true,
			CreatedAt:      at,
			UpdatedAt:      at,
		}))
	}

	goals, err := repo.Goals(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	active, err := repo.Active(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalTypeIncreaseMuscle, active.GoalType)
}

func TestWorkoutLogUpdatesStatistics(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewWorkoutRepository(database)
	user := seedUser(t, database, "runner@example.com")

	start := time.Date(2026, time.June, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := start.AddDate(0, 0, i)
		_, err := repo.Log(ctx, &model.Workout{
			ID:             uuid.New().String(),
			UserID:         user.ID,
			WorkoutType:    "run",
			Duration:       30,
			CaloriesBurned: 250,
			CompletedAt:    at,
			CreatedAt:      at,
		})
		require.NoError(t, err)
	}

	stats, err := NewStatisticsRepository(database).ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalWorkouts)
	assert.Equal(t, 750, stats.TotalCaloriesBurned)
	assert.Equal(t, 90, stats.TotalWorkoutTime)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)

	history, err := repo.History(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].CompletedAt.After(history[1].CompletedAt))
}

func TestProfileUpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewProfileRepository(database)
	user := seedUser(t, database, "profile@example.com")

	first := &model.Profile{UserID: user.ID, DisplayName: "Sam", WorkoutSplit: model.WorkoutSplitUpperLower}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &model.Profile{UserID: user.ID, DisplayName: "Sammy", WorkoutSplit: model.WorkoutSplitCustom}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	stored, err := repo.ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sammy", stored.DisplayName)
	assert.Equal(t, model.WorkoutSplitCustom, stored.WorkoutSplit)
}
