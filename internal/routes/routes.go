package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/templui/fitshare/internal/app"
	"github.com/templui/fitshare/internal/handler"
	"github.com/templui/fitshare/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	account := handler.NewAccountHandler(app.UserService)
	profile := handler.NewProfileHandler(app.ProfileService, app.StatisticsService)
	goal := handler.NewGoalHandler(app.GoalService)
	workout := handler.NewWorkoutHandler(app.WorkoutService)
	nutrition := handler.NewNutritionHandler(app.NutritionService)
	personalBest := handler.NewPersonalBestHandler(app.PersonalBestService)
	challenge := handler.NewChallengeHandler(app.ChallengeService)
	social := handler.NewSocialHandler(app.SocialService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth(app.Cfg.RateLimitAuth, app.Cfg.RateLimitWindow)

	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Account
	mux.HandleFunc("GET /api/account", middleware.RequireAuth(account.Account))
	mux.HandleFunc("PUT /api/account/password", middleware.RequireAuth(account.UpdatePassword))

	// Profile & statistics
	mux.HandleFunc("GET /api/profile/{userId}", middleware.RequireAuth(profile.Profile))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profile.Update))
	mux.HandleFunc("GET /api/statistics/{userId}", middleware.RequireAuth(profile.Statistics))

	// Goals
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/{userId}", middleware.RequireAuth(goal.Goals))

	// Workouts
	mux.HandleFunc("POST /api/workouts", middleware.RequireAuth(workout.Log))
	mux.HandleFunc("GET /api/workouts/{userId}", middleware.RequireAuth(workout.History))

	// Nutrition
	mux.HandleFunc("POST /api/nutrition/daily", middleware.RequireAuth(nutrition.SaveDaily))
	mux.HandleFunc("GET /api/nutrition/daily/{userId}/{date}", middleware.RequireAuth(nutrition.Daily))
	mux.HandleFunc("PATCH /api/nutrition/daily/{date}", middleware.RequireAuth(nutrition.UpdateConsumed))
	mux.HandleFunc("GET /api/nutrition/weekly/{userId}", middleware.RequireAuth(nutrition.Weekly))

	// Personal bests
	mux.HandleFunc("POST /api/personal-bests", middleware.RequireAuth(personalBest.Create))
	mux.HandleFunc("PUT /api/personal-bests/{exercise}", middleware.RequireAuth(personalBest.Improve))
	mux.HandleFunc("GET /api/personal-bests/{userId}", middleware.RequireAuth(personalBest.Bests))

	// Challenges
	mux.HandleFunc("POST /api/challenges", middleware.RequireAuth(challenge.Record))
	mux.HandleFunc("GET /api/challenges/{userId}", middleware.RequireAuth(challenge.Progress))

	// Shared workouts
	mux.HandleFunc("POST /api/shared-workouts", middleware.RequireAuth(social.Share))
	mux.HandleFunc("GET /api/users/{userId}/shared-workouts", middleware.RequireAuth(social.SharedByUser))
	mux.HandleFunc("GET /api/shared-workouts", middleware.RequireAuth(social.Feed))
	mux.HandleFunc("GET /api/shared-workouts/{id}", middleware.RequireAuth(social.SharedWorkout))
	mux.HandleFunc("POST /api/shared-workouts/{id}/reconcile", middleware.RequireAuth(social.Reconcile))
	mux.HandleFunc("POST /api/shared-workouts/{id}/like", middleware.RequireAuth(social.Like))
	mux.HandleFunc("DELETE /api/shared-workouts/{id}/like", middleware.RequireAuth(social.Unlike))
	mux.HandleFunc("GET /api/shared-workouts/{id}/liked", middleware.RequireAuth(social.HasLiked))
	mux.HandleFunc("POST /api/shared-workouts/{id}/comments", middleware.RequireAuth(social.Comment))
	mux.HandleFunc("GET /api/shared-workouts/{id}/comments", middleware.RequireAuth(social.Comments))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	// RequestLogging stays last so it sees the pattern the mux matched.
	chained := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.SecurityHeaders,
		middleware.AuthMiddleware(app.AuthService),
		middleware.RequestLogging,
	)

	return cors.New(cors.Options{
		AllowedOrigins:   app.Cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           600,
	}).Handler(chained)
}
