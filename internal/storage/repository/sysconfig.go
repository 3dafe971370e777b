package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clubfit/membership-tracker/internal/models"
)

// GetCurrentConfig возвращает системную конфигурацию. Если запись ещё не
// создавалась, лениво вставляет значения по умолчанию от имени "system".
func (s *Storage) GetCurrentConfig(ctx context.Context) (*models.SystemConfig, error) {
	const op = "storage.GetCurrentConfig"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT base_price, grace_period_days, suspension_months, updated_at, updated_by
			  FROM system_config WHERE id = 1`
	row := s.DB.QueryRowContext(ctx, query)

	var result models.SystemConfig
	err := row.Scan(&result.BasePrice, &result.GracePeriodDays, &result.SuspensionMonths,
		&result.UpdatedAt, &result.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return s.insertDefaultConfig(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

func (s *Storage) insertDefaultConfig(ctx context.Context) (*models.SystemConfig, error) {
	const op = "storage.insertDefaultConfig"

	cfg := models.SystemConfig{
		BasePrice:        models.DefaultBasePrice,
		GracePeriodDays:  models.DefaultGracePeriodDays,
		SuspensionMonths: models.DefaultSuspensionMonths,
		UpdatedAt:        time.Now().UTC(),
		UpdatedBy:        "system",
	}
	query := `INSERT INTO system_config (id, base_price, grace_period_days,
			      suspension_months, updated_at, updated_by)
			  VALUES (1, $1, $2, $3, $4, $5)
			  ON CONFLICT (id) DO NOTHING`
	if _, err := s.DB.ExecContext(ctx, query, cfg.BasePrice, cfg.GracePeriodDays,
		cfg.SuspensionMonths, cfg.UpdatedAt, cfg.UpdatedBy); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// UpdateConfig перезаписывает системную конфигурацию от имени updatedBy.
func (s *Storage) UpdateConfig(ctx context.Context, cfg models.SystemConfig) (int, error) {
	const op = "storage.UpdateConfig"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO system_config (id, base_price, grace_period_days,
			      suspension_months, updated_at, updated_by)
			  VALUES (1, $1, $2, $3, $4, $5)
			  ON CONFLICT (id) DO UPDATE
			  SET base_price = EXCLUDED.base_price,
			      grace_period_days = EXCLUDED.grace_period_days,
			      suspension_months = EXCLUDED.suspension_months,
			      updated_at = EXCLUDED.updated_at,
			      updated_by = EXCLUDED.updated_by`
	result, err := s.DB.ExecContext(ctx, query, cfg.BasePrice, cfg.GracePeriodDays,
		cfg.SuspensionMonths, cfg.UpdatedAt, cfg.UpdatedBy)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
