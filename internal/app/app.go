package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/material-tracker/internal/adapter/airtable"
	"github.com/heartmarshall/material-tracker/internal/auth"
	"github.com/heartmarshall/material-tracker/internal/config"
	"github.com/heartmarshall/material-tracker/internal/service/image"
	"github.com/heartmarshall/material-tracker/internal/service/request"
	"github.com/heartmarshall/material-tracker/internal/transport/middleware"
	"github.com/heartmarshall/material-tracker/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the record store adapter and services into the HTTP
// transport, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting material tracker",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("table", cfg.Airtable.TableName),
	)

	store := airtable.NewClient(cfg.Airtable, logger)

	requestSvc := request.NewService(logger, store)
	imageSvc := image.NewService(logger, cfg.Upload)

	var identity middleware.Middleware
	if cfg.Auth.JWTSecret != "" {
		parser := auth.NewTokenParser(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		identity = middleware.Identity(parser)
	} else {
		identity = middleware.Identity(nil)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Requests: rest.NewRequestHandler(requestSvc, logger),
		Upload:   rest.NewUploadHandler(imageSvc, cfg.Upload, logger),
		Health:   rest.NewHealthHandler(store, BuildVersion()),
		Identity: identity,
		CORS:     cfg.CORS,
		Limiter:  limiter.Limit(cfg.Server.RateLimitPerMinute),
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
