package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-mentorship-backend/config"
	_ "go-mentorship-backend/docs" // Important for Swagger
	"go-mentorship-backend/internal/delivery/http/v1"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/internal/notify"
	"go-mentorship-backend/internal/repository/postgres"
	"go-mentorship-backend/internal/search"
	"go-mentorship-backend/internal/usecase"
	"go-mentorship-backend/internal/worker"
	"go-mentorship-backend/pkg/auth"
	"go-mentorship-backend/pkg/database"
	"go-mentorship-backend/pkg/logger"
	"go-mentorship-backend/pkg/redis"
	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Mentorship Backend API
// @version         1.0
// @description     Backend for the mentor/mentee matching platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting mentorship backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional: rate limiter and event fan-out degrade without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	requestRepo := postgres.NewRequestRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)

	// 6. Notification sinks: structured log always, Redis pub/sub when available
	sinks := []domain.NotificationSink{notify.NewLogSink()}
	if client := redis.Client(); client != nil {
		sinks = append(sinks, notify.NewRedisSink(client))
	}
	sink := notify.NewMultiSink(sinks...)

	// 7. Search index over the mentor directory
	index := search.NewIndex(profileRepo)
	if err := index.Refresh(context.Background()); err != nil {
		// Degraded start: the index serves an empty snapshot until a
		// refresh succeeds
		logger.Log.Error("Initial mentor snapshot load failed", "error", err)
	}

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	clock := domain.ClockFunc(time.Now)

	searchUC := usecase.NewSearchUsecase(index)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	requestUC := usecase.NewRequestUsecase(requestRepo, profileRepo, sessionRepo, sink, clock,
		time.Duration(cfg.RequestExpiryHours)*time.Hour)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, sink, clock)

	// 9. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	expiry := worker.NewExpiryWorker(requestUC, clock, time.Duration(cfg.ExpirySweepMinutes)*time.Minute)
	go expiry.Run(workerCtx)

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.SearchRefreshSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				if err := index.Refresh(workerCtx); err != nil {
					logger.Log.Error("Mentor snapshot refresh failed", "error", err)
				}
			}
		}
	}()

	// 10. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SearchUC:     searchUC,
		ProfileUC:    profileUC,
		RequestUC:    requestUC,
		SessionUC:    sessionUC,
		ProfileRepo:  profileRepo,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 12. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
