package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sophiaacademy/careerguide/internal/app/controllers"
	appMigrations "github.com/sophiaacademy/careerguide/internal/app/migrations"
	appRepos "github.com/sophiaacademy/careerguide/internal/app/repositories"
	appRoutes "github.com/sophiaacademy/careerguide/internal/app/routes"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
	appServices "github.com/sophiaacademy/careerguide/internal/app/services"
	"github.com/sophiaacademy/careerguide/internal/config"
	"github.com/sophiaacademy/careerguide/internal/db"
	appMiddleware "github.com/sophiaacademy/careerguide/internal/middleware"
	"github.com/sophiaacademy/careerguide/internal/pkg/logger"
	"github.com/sophiaacademy/careerguide/internal/pkg/report"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AssessmentService    appServices.AssessmentService
	ReportService        appServices.ReportService
	AssessmentController *appControllers.AssessmentController
	ReportController     *appControllers.ReportController
	HealthController     *appControllers.HealthController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database.Pool, nil
}

// BuildDependencies initializes services and controllers on top of a record
// store.
func BuildDependencies(store appServices.StudentRecordStore, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	engine := scoring.NewStandard()

	deps.AssessmentService = appServices.NewAssessmentService(store, engine, lgr)
	deps.ReportService = appServices.NewReportService(deps.AssessmentService, engine, report.NewRenderer(), lgr)

	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.HealthController = appControllers.NewHealthController()

	return deps
}

// BuildPostgresDependencies wires the dependencies to the database.
func BuildPostgresDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(dbPool)
	return BuildDependencies(repos.StudentRecordRepository, lgr)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()),
		appMiddleware.CORS(cfg),
	)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AssessmentController,
		deps.ReportController,
		deps.HealthController,
	)

	return router
}
