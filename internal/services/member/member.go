// Package member содержит бизнес-логику регистрации участников,
// чтения карточек и административной смены статуса.
package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/models"
)

// MemberRepository определяет методы для работы с участниками в хранилище.
type MemberRepository interface {
	CreateMember(ctx context.Context, member models.Member) (string, error)
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)
	UpdateMemberFields(ctx context.Context, id string, fields models.MemberUpdate) (int, error)
	ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error)
}

// UserRepository определяет доступ к учётным записям для проверки прав.
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с участниками.
type Service struct {
	members MemberRepository
	users   UserRepository
	cache   Cache
	log     *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(members MemberRepository, users UserRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		members: members,
		users:   users,
		cache:   cache,
		log:     log,
	}
}

// Register создаёт нового участника. Новый участник всегда получает статус
// inactive и метку "никогда не платил" в PaidUntil.
func (s *Service) Register(ctx context.Context, req models.DummyMember) (*models.Member, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	existing, err := s.members.GetMemberByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.InvalidData("Email already in use")
	}

	member := models.Member{
		ID:               uuid.New().String(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Weight:           req.Weight,
		Age:              req.Age,
		JoinDate:         time.Now().UTC(),
		MembershipStatus: models.StatusInactive,
		PaidUntil:        dateutil.NeverPaid,
	}

	if _, err := s.members.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	s.log.Info("registered new member", slog.String("member_id", member.ID))
	return &member, nil
}

func validateRegistration(req models.DummyMember) error {
	if req.FirstName == "" {
		return apperr.InvalidData("First name must not be empty")
	}
	if req.LastName == "" {
		return apperr.InvalidData("Last name must not be empty")
	}
	if req.Email == "" {
		return apperr.InvalidData("Email must not be empty")
	}
	if req.Age <= 0 {
		return apperr.InvalidData("Age must be positive")
	}
	if req.Weight <= 0 {
		return apperr.InvalidData("Weight must be positive")
	}
	return nil
}

// Get возвращает участника по ID, используя кеш или хранилище.
func (s *Service) Get(ctx context.Context, id string) (*models.Member, error) {
	var result *models.Member
	cacheKey := fmt.Sprintf("member:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.members.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperr.NotFound("Member not found")
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache member", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает список участников с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Member, error) {
	return s.members.ListMembers(ctx, limit, offset)
}
