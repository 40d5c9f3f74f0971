package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/validation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(ctx, userID)
}

// Save validates and stores the caller's profile, filling the avatar
// initial and workout split when left empty.
func (s *ProfileService) Save(ctx context.Context, profile *model.Profile) error {
	profile.DisplayName = strings.TrimSpace(profile.DisplayName)
	if profile.AvatarInitial == "" {
		profile.AvatarInitial = avatarInitial(profile.DisplayName)
	}
	if profile.WorkoutSplit == "" {
		profile.WorkoutSplit = model.WorkoutSplitPushPullLegs
	}

	err := validation.First(
		validation.ValidateName(profile.DisplayName),
		validation.MaxLength("avatar_initial", profile.AvatarInitial, 1),
		validation.OneOf("workout_split", profile.WorkoutSplit, model.WorkoutSplits),
		validateCardio(profile),
		positiveFloat("height", profile.Height),
		positiveFloat("weight", profile.Weight),
		positiveInt("age", profile.Age),
	)
	if err != nil {
		return err
	}

	return s.profileRepo.Upsert(ctx, profile)
}

func validateCardio(profile *model.Profile) error {
	if profile.CardioType == nil {
		return nil
	}
	return validation.OneOf("cardio_type", *profile.CardioType, model.CardioTypes)
}

func positiveFloat(field string, v *float64) error {
	if v != nil && *v <= 0 {
		return validation.Invalid(field, "must be greater than 0")
	}
	return nil
}

func positiveInt(field string, v *int) error {
	if v == nil {
		return nil
	}
	return validation.Positive(field, *v)
}

// avatarInitial upper-cases the first letter of name; letters whose upper
// case spans several characters are kept as typed.
func avatarInitial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}

	upper := cases.Upper(language.Und).String(string(r))
	if utf8.RuneCountInString(upper) != 1 {
		return string(r)
	}
	return upper
}
