package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shop/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-shop/internal/db"
	redispkg "github.com/BruksfildServices01/pet-shop/internal/infra/redis"
	"github.com/BruksfildServices01/pet-shop/internal/routes"
	"github.com/BruksfildServices01/pet-shop/internal/timezone"
	"github.com/BruksfildServices01/pet-shop/internal/validators"
	"github.com/BruksfildServices01/pet-shop/internal/worker"
	"github.com/BruksfildServices01/pet-shop/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "pet-shop-api",
	})

	if !timezone.IsValid(cfg.ShopTimezone) {
		log.Warn().Str("timezone", cfg.ShopTimezone).Msg("unknown SHOP_TIMEZONE, using " + timezone.DefaultTimezone)
	}

	if cfg.JWTSecret == "changeme" && !cfg.IsDevelopment() {
		log.Fatal().Msg("JWT_SECRET must be set outside development")
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	if cfg.SeedServices {
		n, err := dbpkg.SeedServices(context.Background(), db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed services")
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("seeded default services")
		}
	}

	rdb, err := redispkg.Connect(context.Background(), redispkg.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	runner := worker.NewRunner(log, worker.Options{
		QueueSize: cfg.Worker.QueueSize,
		Timeout:   cfg.Worker.TaskTimeout,
	})

	if err := validators.Register(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Redis:  rdb,
		Tasks:  runner,
		Config: cfg,
		Log:    log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := runner.Close(ctx); err != nil {
		log.Error().Err(err).Msg("background tasks did not drain")
	}
}
