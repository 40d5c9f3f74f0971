// Package client is a typed HTTP client for the fitshare API.
//
// Calls are not retried and carry no timeout of their own; bound them with
// the context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/templui/fitshare/internal/model"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token sent with later requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkFailure{Method: method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkFailure{Method: method, URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Payload: payload}
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	err = json.Unmarshal(payload, out)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// call decodes a single resource, returning nil on any error.
func call[T any](ctx context.Context, c *Client, method, path string, in any) (*T, error) {
	out := new(T)
	err := c.do(ctx, method, path, in, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func list[T any](ctx context.Context, c *Client, method, path string, in any) ([]*T, error) {
	var out []*T
	err := c.do(ctx, method, path, in, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func segment(s string) string {
	return url.PathEscape(s)
}

// ============================================================================
// Auth & account
// ============================================================================

type AuthResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

type Account struct {
	User       *model.User       `json:"user"`
	Profile    *model.Profile    `json:"profile,omitempty"`
	Statistics *model.Statistics `json:"statistics"`
	ActiveGoal *model.Goal       `json:"active_goal,omitempty"`
}

func (c *Client) Register(ctx context.Context, email, password, displayName string) (*AuthResult, error) {
	in := map[string]string{"email": email, "password": password, "display_name": displayName}
	return call[AuthResult](ctx, c, http.MethodPost, "/api/auth/register", in)
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := map[string]string{"email": email, "password": password}
	return call[AuthResult](ctx, c, http.MethodPost, "/api/auth/login", in)
}

func (c *Client) Account(ctx context.Context) (*Account, error) {
	return call[Account](ctx, c, http.MethodGet, "/api/account", nil)
}

func (c *Client) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	in := map[string]string{"current_password": currentPassword, "new_password": newPassword}
	return c.do(ctx, http.MethodPut, "/api/account/password", in, nil)
}

// ============================================================================
// Profile, statistics & goals
// ============================================================================

func (c *Client) Profile(ctx context.Context, userID string) (*model.Profile, error) {
	return call[model.Profile](ctx, c, http.MethodGet, "/api/profile/"+segment(userID), nil)
}

type ProfileInput struct {
	DisplayName   string   `json:"display_name"`
	AvatarInitial string   `json:"avatar_initial,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Age           *int     `json:"age,omitempty"`
	WorkoutSplit  string   `json:"workout_split,omitempty"`
	IncludeCardio bool     `json:"include_cardio"`
	CardioType    *string  `json:"cardio_type,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileInput) (*model.Profile, error) {
	return call[model.Profile](ctx, c, http.MethodPut, "/api/profile", in)
}

func (c *Client) Statistics(ctx context.Context, userID string) (*model.Statistics, error) {
	return call[model.Statistics](ctx, c, http.MethodGet, "/api/statistics/"+segment(userID), nil)
}

// CreateGoal makes goalType the caller's active goal. A zero
// targetCalories lets the server apply its default.
func (c *Client) CreateGoal(ctx context.Context, goalType string, targetCalories int) (*model.Goal, error) {
	in := map[string]any{"goal_type": goalType, "target_calories": targetCalories}
	return call[model.Goal](ctx, c, http.MethodPost, "/api/goals", in)
}

func (c *Client) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return list[model.Goal](ctx, c, http.MethodGet, "/api/goals/"+segment(userID), nil)
}

// ============================================================================
// Workouts, personal bests & challenges
// ============================================================================

type WorkoutInput struct {
	WorkoutType    string    `json:"workout_type"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"calories_burned"`
	CompletedAt    time.Time `json:"completed_at,omitzero"`
}

type LoggedWorkout struct {
	Workout    *model.Workout    `json:"workout"`
	Statistics *model.Statistics `json:"statistics"`
}

func (c *Client) LogWorkout(ctx context.Context, in WorkoutInput) (*LoggedWorkout, error) {
	return call[LoggedWorkout](ctx, c, http.MethodPost, "/api/workouts", in)
}

func (c *Client) WorkoutHistory(ctx context.Context, userID string, limit int) ([]*model.Workout, error) {
	return list[model.Workout](ctx, c, http.MethodGet, "/api/workouts/"+segment(userID)+limitQuery(limit), nil)
}

type PersonalBestInput struct {
	ExerciseName string    `json:"exercise_name"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	DateAchieved time.Time `json:"date_achieved,omitzero"`
}

func (c *Client) CreatePersonalBest(ctx context.Context, in PersonalBestInput) (*model.PersonalBest, error) {
	return call[model.PersonalBest](ctx, c, http.MethodPost, "/api/personal-bests", in)
}

func (c *Client) ImprovePersonalBest(ctx context.Context, in PersonalBestInput) (*model.PersonalBest, error) {
	return call[model.PersonalBest](ctx, c, http.MethodPut, "/api/personal-bests/"+segment(in.ExerciseName), in)
}

func (c *Client) PersonalBests(ctx context.Context, userID string) ([]*model.PersonalBest, error) {
	return list[model.PersonalBest](ctx, c, http.MethodGet, "/api/personal-bests/"+segment(userID), nil)
}

type ChallengeInput struct {
	ChallengeName string    `json:"challenge_name"`
	Duration      int       `json:"duration"`
	Distance      *float64  `json:"distance,omitempty"`
	Speed         *float64  `json:"speed,omitempty"`
	CompletedAt   time.Time `json:"completed_at,omitzero"`
}

func (c *Client) RecordChallenge(ctx context.Context, in ChallengeInput) (*model.ChallengeProgress, error) {
	return call[model.ChallengeProgress](ctx, c, http.MethodPost, "/api/challenges", in)
}

func (c *Client) ChallengeProgress(ctx context.Context, userID string) ([]*model.ChallengeProgress, error) {
	return list[model.ChallengeProgress](ctx, c, http.MethodGet, "/api/challenges/"+segment(userID), nil)
}

// ============================================================================
// Nutrition
// ============================================================================

func (c *Client) SaveDailyNutrition(ctx context.Context, date string, targetCalories, consumedCalories int) (*model.DailyNutrition, error) {
	in := map[string]any{"date": date, "target_calories": targetCalories, "consumed_calories": consumedCalories}
	return call[model.DailyNutrition](ctx, c, http.MethodPost, "/api/nutrition/daily", in)
}

func (c *Client) DailyNutrition(ctx context.Context, userID, date string) (*model.DailyNutrition, error) {
	return call[model.DailyNutrition](ctx, c, http.MethodGet, "/api/nutrition/daily/"+segment(userID)+"/"+segment(date), nil)
}

func (c *Client) UpdateConsumedCalories(ctx context.Context, date string, consumed int) (*model.DailyNutrition, error) {
	in := map[string]int{"consumed_calories": consumed}
	return call[model.DailyNutrition](ctx, c, http.MethodPatch, "/api/nutrition/daily/"+segment(date), in)
}

// WeeklyNutrition returns the seven days ending at endDate; an empty
// endDate means today on the server.
func (c *Client) WeeklyNutrition(ctx context.Context, userID, endDate string) ([]*model.DailyNutrition, error) {
	path := "/api/nutrition/weekly/" + segment(userID)
	if endDate != "" {
		path += "?end=" + url.QueryEscape(endDate)
	}
	return list[model.DailyNutrition](ctx, c, http.MethodGet, path, nil)
}

// ============================================================================
// Shared workouts
// ============================================================================

func (c *Client) ShareWorkout(ctx context.Context, workoutHistoryID, caption, visibility string) (*model.SharedWorkout, error) {
	in := map[string]string{"workout_history_id": workoutHistoryID, "caption": caption, "visibility": visibility}
	return call[model.SharedWorkout](ctx, c, http.MethodPost, "/api/shared-workouts", in)
}

func (c *Client) Feed(ctx context.Context, visibility string, limit int) ([]*model.SharedWorkout, error) {
	q := url.Values{}
	if visibility != "" {
		q.Set("visibility", visibility)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/shared-workouts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	return list[model.SharedWorkout](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) SharedByUser(ctx context.Context, userID string, limit int) ([]*model.SharedWorkout, error) {
	return list[model.SharedWorkout](ctx, c, http.MethodGet, "/api/users/"+segment(userID)+"/shared-workouts"+limitQuery(limit), nil)
}

func (c *Client) SharedWorkout(ctx context.Context, id string) (*model.SharedWorkout, error) {
	return call[model.SharedWorkout](ctx, c, http.MethodGet, "/api/shared-workouts/"+segment(id), nil)
}

// Like returns the shared workout with its updated count. Liking twice
// fails with a 409 ServerError.
func (c *Client) Like(ctx context.Context, sharedWorkoutID string) (*model.SharedWorkout, error) {
	return call[model.SharedWorkout](ctx, c, http.MethodPost, "/api/shared-workouts/"+segment(sharedWorkoutID)+"/like", nil)
}

func (c *Client) Unlike(ctx context.Context, sharedWorkoutID string) (*model.SharedWorkout, error) {
	return call[model.SharedWorkout](ctx, c, http.MethodDelete, "/api/shared-workouts/"+segment(sharedWorkoutID)+"/like", nil)
}

func (c *Client) HasLiked(ctx context.Context, sharedWorkoutID string) (bool, error) {
	var out struct {
		Liked bool `json:"liked"`
	}
	err := c.do(ctx, http.MethodGet, "/api/shared-workouts/"+segment(sharedWorkoutID)+"/liked", nil, &out)
	return out.Liked, err
}

func (c *Client) Comment(ctx context.Context, sharedWorkoutID, text string) (*model.WorkoutComment, error) {
	in := map[string]string{"comment": text}
	return call[model.WorkoutComment](ctx, c, http.MethodPost, "/api/shared-workouts/"+segment(sharedWorkoutID)+"/comments", in)
}

func (c *Client) Comments(ctx context.Context, sharedWorkoutID string) ([]*model.WorkoutComment, error) {
	return list[model.WorkoutComment](ctx, c, http.MethodGet, "/api/shared-workouts/"+segment(sharedWorkoutID)+"/comments", nil)
}

func (c *Client) Reconcile(ctx context.Context, sharedWorkoutID string) (*model.SharedWorkout, error) {
	return call[model.SharedWorkout](ctx, c, http.MethodPost, "/api/shared-workouts/"+segment(sharedWorkoutID)+"/reconcile", nil)
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return "?limit=" + strconv.Itoa(limit)
}
