package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubfit/membership-tracker/internal/models"
)

// CreateTrainer вставляет нового тренера и возвращает его ID.
func (s *Storage) CreateTrainer(ctx context.Context, trainer models.Trainer) (string, error) {
	const op = "storage.CreateTrainer"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO trainers (id, first_name, last_name, email, hire_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		trainer.ID, trainer.FirstName, trainer.LastName, trainer.Email,
		trainer.HireDate).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetTrainerByID возвращает тренера по ID либо nil, если запись отсутствует.
func (s *Storage) GetTrainerByID(ctx context.Context, id string) (*models.Trainer, error) {
	const op = "storage.GetTrainerByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, hire_date
			  FROM trainers WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Trainer
	err := row.Scan(&result.ID, &result.FirstName, &result.LastName, &result.Email,
		&result.HireDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetTrainerByEmail возвращает тренера по email либо nil, если запись отсутствует.
func (s *Storage) GetTrainerByEmail(ctx context.Context, email string) (*models.Trainer, error) {
	const op = "storage.GetTrainerByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, hire_date
			  FROM trainers WHERE email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	var result models.Trainer
	err := row.Scan(&result.ID, &result.FirstName, &result.LastName, &result.Email,
		&result.HireDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
