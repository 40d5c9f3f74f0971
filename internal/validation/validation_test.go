package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorNamesField(t *testing.T) {
	err := OneOf("visibility", "everyone", []string{"public", "friends", "private"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "visibility", verr.Field)
}

func TestMaxLengthCountsRunes(t *testing.T) {
	assert.NoError(t, MaxLength("avatar_initial", "É", 1))
	assert.Error(t, MaxLength("avatar_initial", "AB", 1))
	assert.NoError(t, MaxLength("comment", strings.Repeat("ü", 1000), 1000))
	assert.Error(t, MaxLength("comment", strings.Repeat("a", 1001), 1000))
}

func TestRequired(t *testing.T) {
	assert.Error(t, Required("workout_type", "   "))
	assert.NoError(t, Required("workout_type", "legs"))
}

func TestFirstReturnsEarliestFailure(t *testing.T) {
	err := First(nil, Positive("duration", 0), Required("workout_type", ""))
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "duration", verr.Field)
	assert.NoError(t, First(nil, nil))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "short", true},
		{"too long", strings.Repeat("x", 73), true},
		{"common pattern", "mypassword-is-long", true},
		{"ok", "correct-horse-battery", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("lifter@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}
