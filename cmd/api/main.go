package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crisisvoices/backend/internal/api"
	"github.com/crisisvoices/backend/internal/auth"
	"github.com/crisisvoices/backend/internal/cache"
	"github.com/crisisvoices/backend/internal/config"
	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/middleware"
	"github.com/crisisvoices/backend/internal/repository"
	"github.com/crisisvoices/backend/internal/storage"
)

// store is the full persistence surface a repository backend provides
type store interface {
	domain.StoryRepository
	domain.CrisisRepository
	domain.UserRepository
	domain.ConversationRepository
	api.Pinger
}

type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Crisis Voices API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Database.Store),
		zap.String("storage", cfg.Storage.Type),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize store
	repo, closeStore, err := initStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer closeStore()

	healthChecks := []api.HealthCheck{{Name: "store", Pinger: repo}}

	var crises domain.CrisisRepository = repo
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		crises = cache.NewCrisisRepository(repo, cache.NewCrisisCache(rdb), cfg.Redis.CacheTTL, logger)
		healthChecks = append(healthChecks, api.HealthCheck{Name: "redis", Pinger: redisPinger{rdb}})
		logger.Info("Active crisis cache enabled", zap.Duration("ttl", cfg.Redis.CacheTTL))
	}

	// Initialize image storage
	fileStorage, err := initFileStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Initialize auth
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	googleAuth := auth.NewGoogleAuthVerifier(cfg.Google.ClientIDs)
	if googleAuth.IsConfigured() {
		logger.Info("Google sign-in is configured")
	} else {
		logger.Warn("Google sign-in is NOT configured - set GOOGLE_CLIENT_ID to enable")
	}

	// Initialize services
	storyOpts := []domain.StoryServiceOption{
		domain.WithUploadLimits(domain.UploadLimits{
			MaxImages:            cfg.Upload.MaxImages,
			MaxImageEncodedBytes: cfg.Upload.MaxImageEncodedBytes,
		}),
	}
	if fileStorage != nil {
		storyOpts = append(storyOpts, domain.WithImageStore(storage.NewImageOffloader(fileStorage, logger)))
	}
	storyService := domain.NewStoryService(repo, crises, logger, storyOpts...)
	crisisService := domain.NewCrisisService(crises, logger)
	authService := domain.NewAuthService(repo, jwtManager, googleAuth, cfg.JWT.ModeratorEmails, logger)
	conversationService := domain.NewConversationService(repo, repo)

	if err := seedCrises(ctx, crisisService, cfg.Crisis.SeedFile); err != nil {
		logger.Fatal("Failed to seed crises", zap.Error(err))
	}

	// Rate limiter with background eviction of idle clients
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute, logger)
	go limiter.Run(ctx, time.Minute)

	// Initialize router
	router := api.NewRouter(
		api.Handlers{
			Auth:         api.NewAuthHandler(authService, logger),
			Story:        api.NewStoryHandler(storyService, logger),
			Crisis:       api.NewCrisisHandler(crisisService, logger),
			Conversation: api.NewConversationHandler(conversationService, logger),
			Health:       api.NewHealthHandler(logger, healthChecks...),
		},
		jwtManager,
		limiter,
		api.RouterConfig{
			AllowedOrigins:   cfg.Server.AllowedOrigins,
			StoryBodyLimit:   cfg.Upload.StoryBodyLimit,
			DefaultBodyLimit: cfg.Upload.DefaultBodyLimit,
		},
		logger,
	)
	r := router.Setup()
	if cfg.Storage.Type == "local" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.LocalPath))))
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		logger.Error("Server failed", zap.Error(err))
	}
	stop()

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

func initStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (store, func(), error) {
	if cfg.Store == "memory" {
		logger.Warn("Using in-memory store - data is lost on restart")
		return repository.NewMemoryRepository(), func() {}, nil
	}

	db, err := initDatabase(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to database")

	if err := repository.RunMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repository.NewPostgresRepository(db), db.Close, nil
}

func initDatabase(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// initFileStorage returns nil for inline storage, where images stay data URIs
func initFileStorage(ctx context.Context, cfg config.StorageConfig) (storage.FileStorage, error) {
	switch cfg.Type {
	case "local":
		return storage.NewLocalFileStorage(cfg.LocalPath, cfg.LocalBaseURL)
	case "s3":
		return storage.NewS3Storage(ctx, cfg)
	default:
		return nil, nil
	}
}

func seedCrises(ctx context.Context, svc *domain.CrisisService, seedFile string) error {
	crises := domain.DefaultCrises()
	if seedFile != "" {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		crises = nil
		if err := json.Unmarshal(data, &crises); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}
	}
	return svc.Seed(ctx, crises)
}
