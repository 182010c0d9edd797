package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/microservices/http-api/handler"
	"moviehub/internal/microservices/http-api/middleware"
	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/microservices/http-api/service"
	"moviehub/internal/notify"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	// 2. Connect to the database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// 3. Redis (optional; caching and rate limiting degrade without it)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis unavailable, running without cache", "addr", cfg.RedisAddr, "error", err)
		rdb = nil
	}

	// 4. Repositories
	movieRepo := repository.NewMovieRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	personRepo := repository.NewPersonRepo(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	historyRepo := repository.NewWatchHistoryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// 5. Notification fan-out pool
	pool := notify.NewWorkerPool(cfg.NotifyWorkers)
	pool.Start()
	defer pool.Shutdown()

	dispatcher := notify.NewDispatcher(userRepo, notificationRepo, pool)

	// 6. Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	movieService := service.NewMovieService(movieRepo, dispatcher)
	genreService := service.NewGenreService(genreRepo)
	personService := service.NewPersonService(personRepo)
	userService := service.NewUserService(userRepo, movieRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)
	historyService := service.NewWatchHistoryService(historyRepo, movieRepo, cfg.GateViewIncrement)
	recommendationService := service.NewRecommendationService(movieRepo, userRepo, reviewRepo, rdb, cfg.CacheTTL)
	notificationService := service.NewNotificationService(notificationRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)

	// 7. Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	limiter := middleware.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	r.Use(limiter.Handler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.AuthMiddleware(authService)

	movies := r.Group("/movies")

	// Public, with per-route guards inside the handlers
	handler.NewAuthHandler(authService).RegisterRoutes(r.Group("/auth"))
	handler.NewMovieHandler(movieService).RegisterRoutes(movies, authMW)
	handler.NewGenreHandler(genreService).RegisterRoutes(r.Group("/genres"), authMW)
	handler.NewPersonHandler(personService).RegisterRoutes(r.Group("/persons"), authMW)
	handler.NewReviewHandler(reviewService).RegisterRoutes(r.Group("/reviews"), authMW)
	handler.NewRecommendationHandler(recommendationService).RegisterRoutes(movies)
	handler.NewWatchHistoryHandler(historyService).RegisterRoutes(r.Group("/watch-history"))

	// Authenticated
	authed := r.Group("/")
	authed.Use(authMW)
	handler.NewUserHandler(userService).RegisterRoutes(authed.Group("/users"))
	handler.NewNotificationHandler(notificationService).RegisterRoutes(authed.Group("/notifications"))
	handler.NewSubscriptionHandler(subscriptionService).RegisterRoutes(authed.Group("/subscriptions"))

	// 8. Serve with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		slog.Info("api server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
