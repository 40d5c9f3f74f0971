package service_test

import (
	"context"

	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
)

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *model.User) error
	byIDFn           func(ctx context.Context, id string) (*model.User, error)
	byEmailFn        func(ctx context.Context, email string) (*model.User, error)
	updatePasswordFn func(ctx context.Context, id, hash string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) ByID(ctx context.Context, id string) (*model.User, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, id)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn != nil {
		return m.byEmailFn(ctx, email)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

type mockProfileRepo struct {
	byUserIDFn func(ctx context.Context, userID string) (*model.Profile, error)
	upsertFn   func(ctx context.Context, profile *model.Profile) error
}

func (m *mockProfileRepo) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	if m.byUserIDFn != nil {
		return m.byUserIDFn(ctx, userID)
	}
	return nil, repository.ErrProfileNotFound
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *model.Profile) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, profile)
	}
	return nil
}

type mockGoalRepo struct {
	createFn func(ctx context.Context, goal *model.Goal) error
	goalsFn  func(ctx context.Context, userID string) ([]*model.Goal, error)
	activeFn func(ctx context.Context, userID string) (*model.Goal, error)
}

func (m *mockGoalRepo) Create(ctx context.Context, goal *model.Goal) error {
	if m.createFn != nil {
		return m.createFn(ctx, goal)
	}
	return nil
}

func (m *mockGoalRepo) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	if m.goalsFn != nil {
		return m.goalsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockGoalRepo) Active(ctx context.Context, userID string) (*model.Goal, error) {
	if m.activeFn != nil {
		return m.activeFn(ctx, userID)
	}
	return nil, repository.ErrGoalNotFound
}

type mockWorkoutRepo struct {
	logFn     func(ctx context.Context, workout *model.Workout) (*model.Statistics, error)
	byIDFn    func(ctx context.Context, userID, workoutID string) (*model.Workout, error)
	historyFn func(ctx context.Context, userID string, limit int) ([]*model.Workout, error)
}

func (m *mockWorkoutRepo) Log(ctx context.Context, workout *model.Workout) (*model.Statistics, error) {
	if m.logFn != nil {
		return m.logFn(ctx, workout)
	}
	return &model.Statistics{UserID: workout.UserID}, nil
}

func (m *mockWorkoutRepo) ByID(ctx context.Context, userID, workoutID string) (*model.Workout, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, userID, workoutID)
	}
	return &model.Workout{ID: workoutID, UserID: userID}, nil
}

func (m *mockWorkoutRepo) History(ctx context.Context, userID string, limit int) ([]*model.Workout, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockNutritionRepo struct {
	createFn         func(ctx context.Context, entry *model.DailyNutrition) error
	updateConsumedFn func(ctx context.Context, userID, date string, consumed int) (*model.DailyNutrition, error)
	byDateFn         func(ctx context.Context, userID, date string) (*model.DailyNutrition, error)
	rangeFn          func(ctx context.Context, userID, from, to string) ([]*model.DailyNutrition, error)
}

func (m *mockNutritionRepo) Create(ctx context.Context, entry *model.DailyNutrition) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockNutritionRepo) UpdateConsumed(ctx context.Context, userID, date string, consumed int) (*model.DailyNutrition, error) {
	if m.updateConsumedFn != nil {
		return m.updateConsumedFn(ctx, userID, date, consumed)
	}
	return nil, repository.ErrNutritionNotFound
}

func (m *mockNutritionRepo) ByDate(ctx context.Context, userID, date string) (*model.DailyNutrition, error) {
	if m.byDateFn != nil {
		return m.byDateFn(ctx, userID, date)
	}
	return nil, repository.ErrNutritionNotFound
}

func (m *mockNutritionRepo) Range(ctx context.Context, userID, from, to string) ([]*model.DailyNutrition, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, from, to)
	}
	return nil, nil
}

type mockPersonalBestRepo struct {
	createFn     func(ctx context.Context, best *model.PersonalBest) error
	updateFn     func(ctx context.Context, best *model.PersonalBest) error
	byExerciseFn func(ctx context.Context, userID, exercise string) (*model.PersonalBest, error)
}

func (m *mockPersonalBestRepo) Create(ctx context.Context, best *model.PersonalBest) error {
	if m.createFn != nil {
		return m.createFn(ctx, best)
	}
	return nil
}

func (m *mockPersonalBestRepo) Update(ctx context.Context, best *model.PersonalBest) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, best)
	}
	return nil
}

func (m *mockPersonalBestRepo) ByExercise(ctx context.Context, userID, exercise string) (*model.PersonalBest, error) {
	if m.byExerciseFn != nil {
		return m.byExerciseFn(ctx, userID, exercise)
	}
	return nil, repository.ErrPersonalBestNotFound
}

func (m *mockPersonalBestRepo) Bests(ctx context.Context, userID string) ([]*model.PersonalBest, error) {
	return nil, nil
}

type mockSocialRepo struct {
	createSharedFn func(ctx context.Context, shared *model.SharedWorkout) error
	sharedByIDFn   func(ctx context.Context, id string) (*model.SharedWorkout, error)
	hasLikedFn     func(ctx context.Context, userID, sharedWorkoutID string) (bool, error)
	byUserFn       func(ctx context.Context, viewerID, userID string, limit int) ([]*model.SharedWorkout, error)
	byVisibilityFn func(ctx context.Context, visibility string, limit int) ([]*model.SharedWorkout, error)
	likeFn         func(ctx context.Context, like *model.WorkoutLike) error
	unlikeFn       func(ctx context.Context, userID, sharedWorkoutID string) (bool, error)
	addCommentFn   func(ctx context.Context, comment *model.WorkoutComment) error
	reconcileFn    func(ctx context.Context, id string) (*model.SharedWorkout, *model.SharedWorkout, error)
}

func (m *mockSocialRepo) CreateShared(ctx context.Context, shared *model.SharedWorkout) error {
	if m.createSharedFn != nil {
		return m.createSharedFn(ctx, shared)
	}
	return nil
}

func (m *mockSocialRepo) SharedByID(ctx context.Context, id string) (*model.SharedWorkout, error) {
	if m.sharedByIDFn != nil {
		return m.sharedByIDFn(ctx, id)
	}
	return nil, repository.ErrSharedWorkoutNotFound
}

func (m *mockSocialRepo) SharedByUser(ctx context.Context, viewerID, userID string, limit int) ([]*model.SharedWorkout, error) {
	if m.byUserFn != nil {
		return m.byUserFn(ctx, viewerID, userID, limit)
	}
	return nil, nil
}

func (m *mockSocialRepo) SharedByVisibility(ctx context.Context, visibility string, limit int) ([]*model.SharedWorkout, error) {
	if m.byVisibilityFn != nil {
		return m.byVisibilityFn(ctx, visibility, limit)
	}
	return nil, nil
}

func (m *mockSocialRepo) Like(ctx context.Context, like *model.WorkoutLike) error {
	if m.likeFn != nil {
		return m.likeFn(ctx, like)
	}
	return nil
}

func (m *mockSocialRepo) Unlike(ctx context.Context, userID, sharedWorkoutID string) (bool, error) {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, userID, sharedWorkoutID)
	}
	return false, nil
}

func (m *mockSocialRepo) HasLiked(ctx context.Context, userID, sharedWorkoutID string) (bool, error) {
	if m.hasLikedFn != nil {
		return m.hasLikedFn(ctx, userID, sharedWorkoutID)
	}
	return false, nil
}

func (m *mockSocialRepo) AddComment(ctx context.Context, comment *model.WorkoutComment) error {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, comment)
	}
	return nil
}

func (m *mockSocialRepo) Comments(ctx context.Context, sharedWorkoutID string) ([]*model.WorkoutComment, error) {
	return nil, nil
}

func (m *mockSocialRepo) Reconcile(ctx context.Context, id string) (*model.SharedWorkout, *model.SharedWorkout, error) {
	if m.reconcileFn != nil {
		return m.reconcileFn(ctx, id)
	}
	return nil, nil, repository.ErrSharedWorkoutNotFound
}
