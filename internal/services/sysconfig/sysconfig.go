// Package sysconfig содержит бизнес-логику системной конфигурации клуба.
package sysconfig

import (
	"context"
	"log/slog"
	"time"

	"github.com/clubfit/membership-tracker/internal/models"
)

const cacheKey = "system_config"

// ConfigRepository определяет методы хранилища конфигурации.
type ConfigRepository interface {
	// GetCurrentConfig возвращает конфигурацию, лениво создавая значения по умолчанию.
	GetCurrentConfig(ctx context.Context) (*models.SystemConfig, error)
	// UpdateConfig перезаписывает конфигурацию.
	UpdateConfig(ctx context.Context, cfg models.SystemConfig) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует чтение и обновление системной конфигурации с кешем.
type Service struct {
	repo  ConfigRepository
	cache Cache
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo ConfigRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetCurrentConfig возвращает конфигурацию из кеша либо из хранилища.
func (s *Service) GetCurrentConfig(ctx context.Context) (*models.SystemConfig, error) {
	var result *models.SystemConfig
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetCurrentConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache system config", slog.Any("err", err))
	}
	return result, nil
}

// Update перезаписывает конфигурацию от имени updatedBy и сбрасывает кеш.
func (s *Service) Update(ctx context.Context, req models.DummySystemConfig, updatedBy string) (*models.SystemConfig, error) {
	cfg := models.SystemConfig{
		BasePrice:        req.BasePrice,
		GracePeriodDays:  req.GracePeriodDays,
		SuspensionMonths: req.SuspensionMonths,
		UpdatedAt:        time.Now().UTC(),
		UpdatedBy:        updatedBy,
	}
	if _, err := s.repo.UpdateConfig(ctx, cfg); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate system config cache", slog.Any("err", err))
	}
	s.log.Info("system config updated", slog.String("updated_by", updatedBy))
	return &cfg, nil
}
