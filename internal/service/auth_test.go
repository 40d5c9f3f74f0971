package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/service"
	"github.com/templui/fitshare/internal/validation"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestRegisterCreatesProfile(t *testing.T) {
	var profile *model.Profile
	profiles := &mockProfileRepo{
		upsertFn: func(ctx context.Context, p *model.Profile) error {
			profile = p
			return nil
		},
	}
	svc := service.NewAuthService(&mockUserRepo{}, profiles, testSecret, time.Hour)

	user, err := svc.Register(context.Background(), " Ana@Example.com ", "Tr41ning-Log!", "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "Tr41ning-Log!", *user.PasswordHash)

	require.NotNil(t, profile)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "A", profile.AvatarInitial)
	assert.Equal(t, model.WorkoutSplitPushPullLegs, profile.WorkoutSplit)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			return repository.ErrUniquenessConflict
		},
	}
	svc := service.NewAuthService(users, &mockProfileRepo{}, testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "ana@example.com", "Tr41ning-Log!", "Ana")
	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, repository.ErrUniquenessConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, &mockProfileRepo{}, testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "not-an-email", "Tr41ning-Log!", "Ana")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestLoginAndToken(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, &mockProfileRepo{}, testSecret, time.Hour)
	hash, err := svc.HashPassword("Tr41ning-Log!")
	require.NoError(t, err)

	stored := &model.User{ID: "u1", Email: "ana@example.com", PasswordHash: &hash}
	users := &mockUserRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, repository.ErrUserNotFound
		},
	}
	svc = service.NewAuthService(users, &mockProfileRepo{}, testSecret, time.Hour)

	_, err = svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "Tr41ning-Log!")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	user, err := svc.Login(context.Background(), "ANA@example.com", "Tr41ning-Log!")
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := svc.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	other := service.NewAuthService(users, &mockProfileRepo{}, "another-secret-of-sufficient-length", time.Hour)
	_, err = other.VerifyJWT(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, &mockProfileRepo{}, testSecret, -time.Minute)

	token, _, err := svc.GenerateJWT(&model.User{ID: "u1"})
	require.NoError(t, err)

	_, err = svc.VerifyJWT(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
