package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/academics/internal/app/controllers"
	appRepos "github.com/yigit/academics/internal/app/repositories"
	appRoutes "github.com/yigit/academics/internal/app/routes"
	appServices "github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/config"
	appMiddleware "github.com/yigit/academics/internal/middleware"
	pkgAuth "github.com/yigit/academics/internal/pkg/auth"
	"github.com/yigit/academics/internal/pkg/helpers"
	"github.com/yigit/academics/internal/pkg/logger"
	"github.com/yigit/academics/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Services           *appServices.Services
	JWTService         *pkgAuth.JWTService
	AuthMiddleware     *appMiddleware.AuthMiddleware
	AcademicController *appControllers.AcademicController
	CourseController   *appControllers.CourseController
	RegistryController *appControllers.RegistryController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(cfg.Logging.Format),
	})

	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Strs("envOverrides", cfg.EnvOverrides).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.Repos, err = appRepos.NewRepositories(appRepos.Options{
		IDStrategy:    cfg.Registry.IDStrategy,
		AcademicIDMax: cfg.Registry.AcademicIDMax,
		CourseIDMax:   cfg.Registry.CourseIDMax,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize registry")
		return nil, fmt.Errorf("failed to initialize registry: %w", err)
	}
	lgr.Info().Str("idStrategy", cfg.Registry.IDStrategy).Msg("Registry initialized")

	deps.Services = appServices.NewServices(deps.Repos, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Services.Academic, cfg.JWT.AllowIDHeader)

	deps.AcademicController = appControllers.NewAcademicController(deps.Services.Academic, deps.JWTService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Course)
	deps.RegistryController = appControllers.NewRegistryController(deps.Services.Admin)

	return deps, nil
}

// SeedRegistry loads the configured seed file. Failures are logged and start-up proceeds.
func SeedRegistry(cfg *config.Config, deps *Dependencies) {
	if err := seed.CreateDefaultData(context.Background(), cfg.Seed.Path, deps.Services, deps.Logger); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to seed registry, proceeding anyway...")
	}
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
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AcademicController,
		deps.CourseController,
		deps.RegistryController,
		deps.AuthMiddleware,
	)

	return router
}
