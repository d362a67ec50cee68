package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multiservice-api/config"
	"multiservice-api/identity"
	"multiservice-api/logger"
	"multiservice-api/metrics"
	"multiservice-api/repository"
	"multiservice-api/routes"
	"multiservice-api/seed"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("Starting", cfg.LogFields()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DatabaseURL, store.Options{LogLevel: cfg.DBLogLevel, Logger: log})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Warn("Closing database failed", zap.Error(err))
		}
	}()

	repo := repository.New(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	if cfg.SeedOnStart {
		res, err := seed.Run(ctx, repo, time.Now())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("Seed data ensured", zap.Int("inserted", res.Total()), zap.Any("per_collection", res))
	}

	router, err := routes.NewRouter(routes.Deps{
		Repo:        repo,
		Verifier:    identity.NewPlaceholder(cfg.IdentityProjectID, cfg.IdentityAPIKey),
		Logger:      log,
		Metrics:     metrics.NewHTTPMetrics(cfg.ServiceName),
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server running", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("backend", db.Backend()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
