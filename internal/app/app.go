// Package app собирает приложение: подключения к хранилищам, бизнес-сервис,
// маршруты и HTTP-сервер с корректным завершением работы.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/user-account-service/internal/cache"
	"github.com/magabrotheeeer/user-account-service/internal/config"
	"github.com/magabrotheeeer/user-account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/user-account-service/internal/media"
	"github.com/magabrotheeeer/user-account-service/internal/migrations"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
	"github.com/magabrotheeeer/user-account-service/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	mediaStore, err := media.NewS3Store(ctx, cfg.MediaStore)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(
		cfg.AccessSecretKey,
		cfg.RefreshSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	service := userservice.New(db, jwtMaker, mediaStore, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, jwtMaker, db, cfg.CORSAllowedOrigin)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		_ = a.cache.Db.Close()
		return err
	}
}
