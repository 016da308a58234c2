// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/sports-academy/internal/admin"
	"github.com/carterperez-dev/sports-academy/internal/auth"
	"github.com/carterperez-dev/sports-academy/internal/cart"
	"github.com/carterperez-dev/sports-academy/internal/class"
	"github.com/carterperez-dev/sports-academy/internal/config"
	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/events"
	"github.com/carterperez-dev/sports-academy/internal/health"
	"github.com/carterperez-dev/sports-academy/internal/middleware"
	"github.com/carterperez-dev/sports-academy/internal/payment"
	"github.com/carterperez-dev/sports-academy/internal/server"
	"github.com/carterperez-dev/sports-academy/internal/user"
)

const (
	drainDelay = 5 * time.Second

	tokenRequestsPerMinute = 10
	tokenBurst             = 5
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("database schema up to date")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	publisher, err := events.New(cfg.Events)
	if err != nil {
		return err
	}
	logger.Info("event publisher ready",
		"exchange", cfg.Events.Exchange,
		"enabled", cfg.Events.URL != "",
	)

	gateway, err := payment.NewGateway(cfg.Payment)
	if err != nil {
		return err
	}
	logger.Info("payment gateway initialized",
		"provider", gateway.Name(),
		"currency", cfg.Payment.Currency,
	)

	hasher, err := core.NewPasswordHasher(core.DefaultArgonParams)
	if err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "HS256",
		"expires_in", cfg.JWT.AccessTokenExpire.String(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo, hasher)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(jwtManager, userSvc, hasher, redis)
	authHandler := auth.NewHandler(authSvc)

	classSvc := class.NewService(class.NewRepository(db.DB))
	classHandler := class.NewHandler(classSvc)

	cartSvc := cart.NewService(cart.NewRepository(db.DB))
	cartHandler := cart.NewHandler(cartSvc)

	paymentSvc := payment.NewService(
		payment.NewRepository(db.DB),
		gateway,
		cfg.Payment.Currency,
	)
	enrollmentSvc := payment.NewEnrollmentService(db.DB, publisher, logger)
	paymentHandler := payment.NewHandler(paymentSvc, enrollmentSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Users:      userSvc,
		Classes:    classSvc,
		Payments:   paymentSvc,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.Per(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := user.RequireRole(userSvc, user.RoleAdmin)

	tokenLimiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit:    middleware.PerMinute(tokenRequestsPerMinute, tokenBurst),
		KeyFunc:  middleware.KeyByIPAndPath,
		FailOpen: true,
	})
	router.Group(func(r chi.Router) {
		r.Use(tokenLimiter.Handler)
		authHandler.RegisterRoutes(r, authenticator)
	})

	userHandler.RegisterRoutes(router, authenticator, adminOnly)
	classHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router, authenticator)
	paymentHandler.RegisterRoutes(router, authenticator)
	adminHandler.RegisterRoutes(router, authenticator, adminOnly)

	healthHandler.SetReady(true)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
