package sysconfig

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clubfit/membership-tracker/internal/models"
)

type ConfigRepoMock struct{ mock.Mock }

func (m *ConfigRepoMock) GetCurrentConfig(ctx context.Context) (*models.SystemConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SystemConfig), args.Error(1)
}

func (m *ConfigRepoMock) UpdateConfig(ctx context.Context, cfg models.SystemConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestGetCurrentConfig_CacheMiss(t *testing.T) {
	cfg := &models.SystemConfig{BasePrice: 28000, GracePeriodDays: 10, SuspensionMonths: 3}

	repo := new(ConfigRepoMock)
	repo.On("GetCurrentConfig", mock.Anything).Return(cfg, nil).Once()

	cache := new(CacheMock)
	cache.On("Get", "system_config", mock.Anything).Return(false, nil).Once()
	cache.On("Set", "system_config", cfg, time.Hour).Return(nil).Once()

	svc := NewService(repo, cache, newNoopLogger())

	got, err := svc.GetCurrentConfig(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, float64(28000), got.BasePrice)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetCurrentConfig_CacheHit(t *testing.T) {
	repo := new(ConfigRepoMock)

	cache := new(CacheMock)
	cache.On("Get", "system_config", mock.Anything).Return(true, nil).Once()

	svc := NewService(repo, cache, newNoopLogger())

	_, err := svc.GetCurrentConfig(context.Background())

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "GetCurrentConfig", mock.Anything)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	repo := new(ConfigRepoMock)
	repo.On("UpdateConfig", mock.Anything, mock.MatchedBy(func(cfg models.SystemConfig) bool {
		return cfg.BasePrice == 30000 && cfg.UpdatedBy == "admin"
	})).Return(1, nil).Once()

	cache := new(CacheMock)
	cache.On("Invalidate", "system_config").Return(nil).Once()

	svc := NewService(repo, cache, newNoopLogger())

	got, err := svc.Update(context.Background(), models.DummySystemConfig{
		BasePrice:        30000,
		GracePeriodDays:  5,
		SuspensionMonths: 2,
	}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, float64(30000), got.BasePrice)
	assert.Equal(t, "admin", got.UpdatedBy)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
