package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
)

// Account bundles what a signed-in user sees about themselves.
type Account struct {
	User       *model.User       `json:"user"`
	Profile    *model.Profile    `json:"profile,omitempty"`
	Statistics *model.Statistics `json:"statistics"`
	ActiveGoal *model.Goal       `json:"active_goal,omitempty"`
}

type UserService struct {
	userRepository       repository.UserRepository
	profileRepository    repository.ProfileRepository
	statisticsRepository repository.StatisticsRepository
	goalRepository       repository.GoalRepository
}

func NewUserService(
	userRepository repository.UserRepository,
	profileRepository repository.ProfileRepository,
	statisticsRepository repository.StatisticsRepository,
	goalRepository repository.GoalRepository,
) *UserService {
	return &UserService{
		userRepository:       userRepository,
		profileRepository:    profileRepository,
		statisticsRepository: statisticsRepository,
		goalRepository:       goalRepository,
	}
}

// Account loads the user with profile, statistics and active goal. A
// missing profile or goal is left nil.
func (s *UserService) Account(ctx context.Context, userID string) (*Account, error) {
	user, err := s.userRepository.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account := &Account{User: user}

	account.Profile, err = s.profileRepository.ByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	account.Statistics, err = s.statisticsRepository.ByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	account.ActiveGoal, err = s.goalRepository.Active(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to get active goal: %w", err)
	}

	return account, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepository.ByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return validation.Invalid("password", "account has no password set")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(currentPassword))
	if err != nil {
		return ErrInvalidCurrentPassword
	}

	err = validation.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepository.UpdatePassword(ctx, userID, string(hashedPassword))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
