package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fitshare/internal/config"
	"github.com/templui/fitshare/internal/db"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/service"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	AuthService         *service.AuthService
	UserService         *service.UserService
	ProfileService      *service.ProfileService
	StatisticsService   *service.StatisticsService
	GoalService         *service.GoalService
	WorkoutService      *service.WorkoutService
	NutritionService    *service.NutritionService
	PersonalBestService *service.PersonalBestService
	ChallengeService    *service.ChallengeService
	SocialService       *service.SocialService
}

func New(cfg *config.Config) (*App, error) {
	// Connect and run migrations
	database, err := db.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	statisticsRepository := repository.NewStatisticsRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	workoutRepository := repository.NewWorkoutRepository(database)
	nutritionRepository := repository.NewNutritionRepository(database)
	personalBestRepository := repository.NewPersonalBestRepository(database)
	challengeRepository := repository.NewChallengeRepository(database)
	socialRepository := repository.NewSocialRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, profileRepository, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository, profileRepository, statisticsRepository, goalRepository)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      service.NewProfileService(profileRepository),
		StatisticsService:   service.NewStatisticsService(statisticsRepository),
		GoalService:         service.NewGoalService(goalRepository),
		WorkoutService:      service.NewWorkoutService(workoutRepository),
		NutritionService:    service.NewNutritionService(nutritionRepository),
		PersonalBestService: service.NewPersonalBestService(personalBestRepository),
		ChallengeService:    service.NewChallengeService(challengeRepository),
		SocialService:       service.NewSocialService(socialRepository, workoutRepository),
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return db.Close(a.DB)
	}
	return nil
}
