// Package auth содержит логику входа пользователей и проверки JWT.
package auth

import (
	"context"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/jwt"
	"github.com/clubfit/membership-tracker/internal/lib/password"
	"github.com/clubfit/membership-tracker/internal/models"
)

// UserRepository описывает контракт для работы с учётными записями.
type UserRepository interface {
	// GetUserByUsername возвращает пользователя либо nil, если запись отсутствует.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service отвечает за вход и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", apperr.InvalidData("Invalid credentials")
	}
	if !user.IsActive {
		return "", "", apperr.InvalidData("User is not active")
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", apperr.InvalidData("Invalid credentials")
	}

	memberID := ""
	if user.MemberID != nil {
		memberID = *user.MemberID
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, user.Role, memberID)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// ValidateToken проверяет JWT и возвращает данные пользователя из claims.
func (s *Service) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}
