package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubfit/membership-tracker/internal/models"
)

// CreateUser вставляет новую учётную запись и возвращает её ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (id, username, password_hash, role, member_id,
			      trainer_id, created_at, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Role, user.MemberID,
		user.TrainerID, user.CreatedAt, user.IsActive).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByUsername возвращает пользователя по имени либо nil, если запись отсутствует.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash, role, member_id, trainer_id,
				created_at, is_active
			  FROM users WHERE username = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, username), op)
}

// GetUserByID возвращает пользователя по ID либо nil, если запись отсутствует.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash, role, member_id, trainer_id,
				created_at, is_active
			  FROM users WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

// GetUserByTrainerID возвращает учётную запись тренера либо nil, если её нет.
func (s *Storage) GetUserByTrainerID(ctx context.Context, trainerID string) (*models.User, error) {
	const op = "storage.GetUserByTrainerID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash, role, member_id, trainer_id,
				created_at, is_active
			  FROM users WHERE trainer_id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, trainerID), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	var result models.User
	err := row.Scan(&result.ID, &result.Username, &result.PasswordHash, &result.Role,
		&result.MemberID, &result.TrainerID, &result.CreatedAt, &result.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
