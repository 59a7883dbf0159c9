package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentrecords/internal/app/controllers"
	appMigrations "github.com/yigit/studentrecords/internal/app/migrations"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
	appRoutes "github.com/yigit/studentrecords/internal/app/routes"
	appServices "github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/db"
	appMiddleware "github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
	"github.com/yigit/studentrecords/internal/pkg/kubeinfo"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/pkg/metrics"
	"github.com/yigit/studentrecords/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	CourseService     appServices.CourseService
	EnrollmentService appServices.EnrollmentService
	DepartmentService *appServices.DepartmentService
	SystemInfoService *appServices.SystemInfoService
	Controllers       appRoutes.Controllers
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// RunMigrations applies the SQL files of the configured directory.
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase builds the pool, then migrates and seeds. A database that is
// down at startup does not stop the service: migrations are retried once after
// the configured delay, and a second failure is logged.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to configure database pool")
		return nil, err
	}

	if err := database.Ping(ctx, 5*time.Second); err != nil {
		lgr.Warn().Err(err).Msg("Database not reachable yet")
	}

	migrateErr := RunMigrations(ctx, cfg, database, lgr)
	if migrateErr != nil {
		delay := helpers.ParseDuration(cfg.Database.MigrationRetryDelay, 10*time.Second)
		lgr.Warn().Err(migrateErr).Dur("retryIn", delay).Msg("Database migration failed, retrying once")

		select {
		case <-ctx.Done():
			return database, nil
		case <-time.After(delay):
		}
		migrateErr = RunMigrations(ctx, cfg, database, lgr)
	}
	if migrateErr != nil {
		lgr.Error().Err(migrateErr).Msg("Database migration failed after retry, continuing without schema")
		return database, nil
	}

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// NewClusterInspector builds the orchestration client from the kubernetes config section.
func NewClusterInspector(cfg *config.Config) *kubeinfo.Inspector {
	return kubeinfo.NewInspector(kubeinfo.Config{
		APIServer:          cfg.Kubernetes.APIServer,
		TokenPath:          cfg.Kubernetes.TokenPath,
		NamespacePath:      cfg.Kubernetes.NamespacePath,
		CAPath:             cfg.Kubernetes.CAPath,
		InsecureSkipVerify: cfg.Kubernetes.InsecureSkipVerify,
		Timeout:            helpers.ParseDuration(cfg.Kubernetes.Timeout, 5*time.Second),
	})
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.EnrollmentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.EnrollmentRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)

	if cfg.Kubernetes.InsecureSkipVerify {
		lgr.Warn().Msg("Kubernetes API certificate validation is disabled")
	}
	deps.SystemInfoService = appServices.NewSystemInfoService(appServices.SystemInfoConfig{
		AppVersion:      cfg.App.Version,
		Environment:     cfg.App.Environment,
		ServerPort:      cfg.Server.Port,
		DatabaseServer:  cfg.Database.Host,
		DatabaseName:    cfg.Database.DBName,
		DatabaseUser:    cfg.Database.User,
		DatabaseTimeout: helpers.ParseDuration(cfg.Diagnostics.DatabaseTimeout, 5*time.Second),
	}, deps.Repos.StatsRepository, NewClusterInspector(cfg))

	deps.Controllers = appRoutes.Controllers{
		Student:    appControllers.NewStudentController(deps.StudentService),
		Course:     appControllers.NewCourseController(deps.CourseService),
		Department: appControllers.NewDepartmentController(deps.DepartmentService),
		Enrollment: appControllers.NewEnrollmentController(deps.EnrollmentService),
		SystemInfo: appControllers.NewSystemInfoController(deps.SystemInfoService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	metrics.Register()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, deps.Controllers)
	return router
}
