package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ayeshchamikara/gradepoint/internal/app/controllers"
	appMigrations "github.com/ayeshchamikara/gradepoint/internal/app/migrations"
	appRepos "github.com/ayeshchamikara/gradepoint/internal/app/repositories"
	appRoutes "github.com/ayeshchamikara/gradepoint/internal/app/routes"
	appServices "github.com/ayeshchamikara/gradepoint/internal/app/services"
	"github.com/ayeshchamikara/gradepoint/internal/app/state"
	"github.com/ayeshchamikara/gradepoint/internal/config"
	"github.com/ayeshchamikara/gradepoint/internal/db"
	appMiddleware "github.com/ayeshchamikara/gradepoint/internal/middleware"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/logger"
	"github.com/ayeshchamikara/gradepoint/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	TranscriptService    appServices.TranscriptService
	ProfileService       appServices.ProfileService
	TranscriptController *appControllers.TranscriptController
	ProfileController    *appControllers.ProfileController
	Repos                *appRepos.Repositories
	Container            *state.Container
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the embedded store and applies the versioned schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening embedded store...")
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open embedded store")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running store migrations...")
	migrator := appMigrations.NewMigrator(database.DB)
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Store migration error")
		_ = database.Close()
		return nil, fmt.Errorf("store migrations failed: %w", err)
	}
	lgr.Info().Msg("Store migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes repositories, the state container, services,
// and controllers.
func BuildDependencies(cfg *config.Config, database *db.SQLiteDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.DB)

	// Load the stored transcript, seeding the default year on first launch.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	years, err := seed.LoadOrCreateDefaultData(ctx, deps.Repos.YearRepository, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	deps.Container = state.NewContainer(years)

	deps.TranscriptService = appServices.NewTranscriptService(deps.Container, deps.Repos.YearRepository, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository, cfg.Profile.MaxPhotoBytes)

	deps.TranscriptController = appControllers.NewTranscriptController(deps.TranscriptService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.TranscriptController,
		deps.ProfileController,
	)

	return router
}
