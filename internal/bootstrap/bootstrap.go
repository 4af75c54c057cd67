package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzk/mentorlink/internal/app/controllers"
	appMigrations "github.com/oguzk/mentorlink/internal/app/migrations"
	appRepos "github.com/oguzk/mentorlink/internal/app/repositories"
	appRoutes "github.com/oguzk/mentorlink/internal/app/routes"
	appServices "github.com/oguzk/mentorlink/internal/app/services"
	"github.com/oguzk/mentorlink/internal/config"
	"github.com/oguzk/mentorlink/internal/db"
	appMiddleware "github.com/oguzk/mentorlink/internal/middleware"
	"github.com/oguzk/mentorlink/internal/pkg/logger"
	"github.com/oguzk/mentorlink/internal/pkg/provider"
	"github.com/oguzk/mentorlink/internal/pkg/sessionstate"
	"github.com/oguzk/mentorlink/internal/seed"
)

// Stores bundles the two connection pools the service runs against
type Stores struct {
	Primary *db.Store
	Mapping *db.Store
}

// Close closes both pools
func (s *Stores) Close() {
	if s.Primary != nil {
		s.Primary.Close()
	}
	if s.Mapping != nil {
		s.Mapping.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	SessionService    appServices.SessionService
	MenteeService     appServices.MenteeService
	Synchronizer      *appServices.Synchronizer
	AuthController    *appControllers.AuthController
	MenteeController  *appControllers.MenteeController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Repos             *appRepos.Repositories
	Provider          provider.Provider
	StateStore        sessionstate.Store
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

// SetupStores connects the primary and mapping pools and prepares the
// primary schema. The mapping store belongs to the legacy mentorship
// project; its migrations only run when the directory is present, which
// is the local development layout.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*Stores, error) {
	primary, err := db.NewStore("primary", cfg.PrimaryStore)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to primary store")
		return nil, err
	}

	mapping, err := db.NewStore("mapping", cfg.MappingStore)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to mapping store")
		primary.Close()
		return nil, err
	}

	stores := &Stores{Primary: primary, Mapping: mapping}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := primary.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping primary store")
		stores.Close()
		return nil, err
	}
	lgr.Info().Msg("Store connections successfully established.")

	if err := migrateStore(primary, filepath.Join("migrations", "primary"), lgr); err != nil {
		stores.Close()
		return nil, err
	}
	if err := migrateStore(mapping, filepath.Join("migrations", "mapping"), lgr); err != nil {
		stores.Close()
		return nil, err
	}

	if err := seed.CreateDefaultData(context.Background(), primary.Pool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return stores, nil
}

func migrateStore(store *db.Store, dir string, lgr zerolog.Logger) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		lgr.Info().Str("store", store.Name()).Str("path", dir).Msg("No migrations directory for store, skipping")
		return nil
	}

	lgr.Info().Str("store", store.Name()).Msg("Running store migrations...")
	migrator := appMigrations.NewMigrator(store.Pool, lgr)
	if err := migrator.MigrateFromDirectory(context.Background(), dir); err != nil {
		lgr.Error().Err(err).Str("store", store.Name()).Msg("Store migration error")
		return fmt.Errorf("migrations failed for %s store: %w", store.Name(), err)
	}
	return nil
}

// SetupStateStore connects to redis for client session state. When no
// redis address is configured the state lives in process memory, which
// is enough for a single instance.
func SetupStateStore(cfg *config.Config, lgr zerolog.Logger) (sessionstate.Store, *redis.Client, error) {
	if cfg.Redis.Addr == "" {
		lgr.Info().Msg("No redis address configured, using in-memory client state")
		return sessionstate.NewMemoryStore(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to ping redis")
		client.Close()
		return nil, nil, fmt.Errorf("redis connection failed: %w", err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")
	return sessionstate.NewRedisStore(client, cfg.StateTTL()), client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, stores *Stores, states sessionstate.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, StateStore: states}

	deps.Repos = appRepos.NewRepositories(stores.Primary.Pool, stores.Mapping.Pool)

	deps.Provider = provider.NewJWTProvider(provider.Config{
		SecretKey: cfg.Provider.Secret,
		Issuer:    cfg.Provider.Issuer,
	})

	deps.SessionService = appServices.NewSessionService(
		deps.Repos.FacultyRepository,
		deps.Repos.StudentRepository,
		deps.Repos.AccountRepository,
		deps.Provider,
		lgr,
	)

	deps.MenteeService = appServices.NewMenteeService(
		deps.Repos.MappingRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.StudentRepository,
		lgr,
	)

	deps.Synchronizer = appServices.NewSynchronizer(deps.SessionService, states, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionService, cfg.Session.CookieName)

	deps.AuthController = appControllers.NewAuthController(
		deps.SessionService,
		deps.Synchronizer,
		cfg.Session.CookieName,
		int(cfg.CookieMaxAge().Seconds()),
		lgr,
	)
	deps.MenteeController = appControllers.NewMenteeController(deps.MenteeService, lgr)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.MenteeController,
		deps.SessionMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
