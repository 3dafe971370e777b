// Package membershiptracker собирает приложение учёта членства: хранилище,
// миграции, кеш, сервисы и HTTP-сервер с graceful shutdown.
package membershiptracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/clubfit/membership-tracker/internal/cache"
	"github.com/clubfit/membership-tracker/internal/config"
	"github.com/clubfit/membership-tracker/internal/lib/jwt"
	"github.com/clubfit/membership-tracker/internal/migrations"
	authservice "github.com/clubfit/membership-tracker/internal/services/auth"
	credentialsservice "github.com/clubfit/membership-tracker/internal/services/credentials"
	memberservice "github.com/clubfit/membership-tracker/internal/services/member"
	membershipservice "github.com/clubfit/membership-tracker/internal/services/membership"
	paymentservice "github.com/clubfit/membership-tracker/internal/services/payment"
	sysconfigservice "github.com/clubfit/membership-tracker/internal/services/sysconfig"
	trainerservice "github.com/clubfit/membership-tracker/internal/services/trainer"
	"github.com/clubfit/membership-tracker/internal/storage/repository"
)

// App объединяет HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	memberSvc := memberservice.NewService(db, db, cacheRedis, logger)
	membershipSvc := membershipservice.NewService(db, db, cacheRedis, logger)
	paymentSvc := paymentservice.New(db, db, cacheRedis, logger)
	trainerSvc := trainerservice.NewService(db, logger)
	credentialsSvc := credentialsservice.NewService(db, db, db, logger)
	sysconfigSvc := sysconfigservice.NewService(db, cacheRedis, logger)
	authSvc := authservice.NewService(db, jwtMaker)

	router := RegisterRoutes(logger, &Services{
		Member:      memberSvc,
		Membership:  membershipSvc,
		Payment:     paymentSvc,
		Trainer:     trainerSvc,
		Credentials: credentialsSvc,
		SysConfig:   sysconfigSvc,
		Auth:        authSvc,
		Storage:     db,
	}, cfg.WebhookSecret)

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

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
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
		a.db.DB.Close()
		return err
	}
}
