package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/observability"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/validation"
)

// ErrAlreadyLiked wraps repository.ErrUniquenessConflict, so callers may
// test for either.
var ErrAlreadyLiked = fmt.Errorf("workout already liked: %w", repository.ErrUniquenessConflict)

// SocialService shares workouts and records likes and comments on them.
// Private shares are only visible to their owner; without a friend graph,
// friends shares are visible to every signed-in user.
type SocialService struct {
	socialRepo  repository.SocialRepository
	workoutRepo repository.WorkoutRepository
}

func NewSocialService(socialRepo repository.SocialRepository, workoutRepo repository.WorkoutRepository) *SocialService {
	return &SocialService{
		socialRepo:  socialRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *SocialService) Share(ctx context.Context, userID, workoutHistoryID, caption, visibility string) (*model.SharedWorkout, error) {
	caption = strings.TrimSpace(caption)
	if visibility == "" {
		visibility = model.VisibilityFriends
	}

	err := validation.First(
		validation.Required("workout_history_id", workoutHistoryID),
		validation.MaxLength("caption", caption, model.CaptionMaxLength),
		validation.OneOf("visibility", visibility, model.Visibilities),
	)
	if err != nil {
		return nil, err
	}

	_, err = s.workoutRepo.ByID(ctx, userID, workoutHistoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shared := &model.SharedWorkout{
		ID:               uuid.New().String(),
		UserID:           userID,
		WorkoutHistoryID: workoutHistoryID,
		Caption:          caption,
		Visibility:       visibility,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.socialRepo.CreateShared(ctx, shared)
	if err != nil {
		return nil, fmt.Errorf("failed to share workout: %w", err)
	}

	observability.RecordInteraction(observability.KindShare)
	return shared, nil
}

// SharedWorkout returns the share if viewerID may see it.
func (s *SocialService) SharedWorkout(ctx context.Context, viewerID, sharedWorkoutID string) (*model.SharedWorkout, error) {
	shared, err := s.socialRepo.SharedByID(ctx, sharedWorkoutID)
	if err != nil {
		return nil, err
	}
	if !canView(viewerID, shared) {
		return nil, repository.ErrSharedWorkoutNotFound
	}
	return shared, nil
}

func (s *SocialService) Like(ctx context.Context, userID, sharedWorkoutID string) (*model.SharedWorkout, error) {
	_, err := s.SharedWorkout(ctx, userID, sharedWorkoutID)
	if err != nil {
		return nil, err
	}

	err = s.socialRepo.Like(ctx, &model.WorkoutLike{
		ID:              uuid.New().String(),
		UserID:          userID,
		SharedWorkoutID: sharedWorkoutID,
		CreatedAt:       time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrUniquenessConflict) {
		observability.RecordDuplicateLike()
		return nil, ErrAlreadyLiked
	}
	if err != nil {
		return nil, fmt.Errorf("failed to like workout: %w", err)
	}

	observability.RecordInteraction(observability.KindLike)
	return s.socialRepo.SharedByID(ctx, sharedWorkoutID)
}

// Unlike is a no-op when the user had not liked the workout.
func (s *SocialService) Unlike(ctx context.Context, userID, sharedWorkoutID string) (*model.SharedWorkout, error) {
	_, err := s.SharedWorkout(ctx, userID, sharedWorkoutID)
	if err != nil {
		return nil, err
	}

	removed, err := s.socialRepo.Unlike(ctx, userID, sharedWorkoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlike workout: %w", err)
	}
	if removed {
		observability.RecordInteraction(observability.KindUnlike)
	}

	return s.socialRepo.SharedByID(ctx, sharedWorkoutID)
}

func (s *SocialService) HasLiked(ctx context.Context, userID, sharedWorkoutID string) (bool, error) {
	_, err := s.SharedWorkout(ctx, userID, sharedWorkoutID)
	if err != nil {
		return false, err
	}
	return s.socialRepo.HasLiked(ctx, userID, sharedWorkoutID)
}

func (s *SocialService) Comment(ctx context.Context, userID, sharedWorkoutID, text string) (*model.WorkoutComment, error) {
	text = strings.TrimSpace(text)

	err := validation.First(
		validation.Required("comment", text),
		validation.MaxLength("comment", text, model.CommentMaxLength),
	)
	if err != nil {
		return nil, err
	}

	_, err = s.SharedWorkout(ctx, userID, sharedWorkoutID)
	if err != nil {
		return nil, err
	}

	comment := &model.WorkoutComment{
		ID:              uuid.New().String(),
		UserID:          userID,
		SharedWorkoutID: sharedWorkoutID,
		Comment:         text,
		CreatedAt:       time.Now().UTC(),
	}

	err = s.socialRepo.AddComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	observability.RecordInteraction(observability.KindComment)
	return comment, nil
}

func (s *SocialService) Comments(ctx context.Context, viewerID, sharedWorkoutID string) ([]*model.WorkoutComment, error) {
	_, err := s.SharedWorkout(ctx, viewerID, sharedWorkoutID)
	if err != nil {
		return nil, err
	}
	return s.socialRepo.Comments(ctx, sharedWorkoutID)
}

// Reconcile rebuilds both counters from the like and comment rows. Only
// the owner may trigger it.
func (s *SocialService) Reconcile(ctx context.Context, userID, sharedWorkoutID string) (*model.SharedWorkout, error) {
	shared, err := s.socialRepo.SharedByID(ctx, sharedWorkoutID)
	if err != nil {
		return nil, err
	}
	if shared.UserID != userID {
		return nil, repository.ErrSharedWorkoutNotFound
	}

	before, after, err := s.socialRepo.Reconcile(ctx, sharedWorkoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile counters: %w", err)
	}

	if before.LikesCount != after.LikesCount || before.CommentsCount != after.CommentsCount {
		slog.Warn("shared workout counters drifted",
			"shared_workout_id", sharedWorkoutID,
			"likes_before", before.LikesCount,
			"likes_after", after.LikesCount,
			"comments_before", before.CommentsCount,
			"comments_after", after.CommentsCount)
	}
	observability.RecordRepair("likes_count", before.LikesCount, after.LikesCount)
	observability.RecordRepair("comments_count", before.CommentsCount, after.CommentsCount)

	return after, nil
}

// Feed lists the newest public or friends shares.
func (s *SocialService) Feed(ctx context.Context, visibility string, limit int) ([]*model.SharedWorkout, error) {
	if visibility == "" {
		visibility = model.VisibilityPublic
	}
	if visibility == model.VisibilityPrivate {
		return nil, validation.Invalid("visibility", "private shares are not listed in the feed")
	}

	err := validation.OneOf("visibility", visibility, model.Visibilities)
	if err != nil {
		return nil, err
	}

	return s.socialRepo.SharedByVisibility(ctx, visibility, clampLimit(limit))
}

// SharedByUser lists a user's shares, hiding private ones from everyone
// but the owner.
func (s *SocialService) SharedByUser(ctx context.Context, viewerID, userID string, limit int) ([]*model.SharedWorkout, error) {
	return s.socialRepo.SharedByUser(ctx, viewerID, userID, clampLimit(limit))
}

func canView(viewerID string, shared *model.SharedWorkout) bool {
	return shared.Visibility != model.VisibilityPrivate || shared.UserID == viewerID
}
