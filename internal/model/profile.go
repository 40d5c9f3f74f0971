package model

import "time"

const (
	WorkoutSplitPushPullLegs = "push_pull_legs"
	WorkoutSplitUpperLower   = "upper_lower"
	WorkoutSplitFullBody     = "full_body"
	WorkoutSplitBroSplit     = "bro_split"
	WorkoutSplitCustom       = "custom"
)

const (
	CardioTypeRunning    = "running"
	CardioTypeCycling    = "cycling"
	CardioTypeSwimming   = "swimming"
	CardioTypeWalking    = "walking"
	CardioTypeElliptical = "elliptical"
	CardioTypeOther      = "other"
)

var WorkoutSplits = []string{
	WorkoutSplitPushPullLegs,
	WorkoutSplitUpperLower,
	WorkoutSplitFullBody,
	WorkoutSplitBroSplit,
	WorkoutSplitCustom,
}

var CardioTypes = []string{
	CardioTypeRunning,
	CardioTypeCycling,
	CardioTypeSwimming,
	CardioTypeWalking,
	CardioTypeElliptical,
	CardioTypeOther,
}

type Profile struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	DisplayName   string    `db:"display_name" json:"display_name"`
	AvatarInitial string    `db:"avatar_initial" json:"avatar_initial"`
	Height        *float64  `db:"height" json:"height,omitempty"`
	Weight        *float64  `db:"weight" json:"weight,omitempty"`
	Age           *int      `db:"age" json:"age,omitempty"`
	WorkoutSplit  string    `db:"workout_split" json:"workout_split"`
	IncludeCardio bool      `db:"include_cardio" json:"include_cardio"`
	CardioType    *string   `db:"cardio_type" json:"cardio_type,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
