// Package credentials реализует выдачу учётных записей участникам и тренерам.
//
// Участник получает логин, равный его email. Тренер получает сгенерированный
// логин вида coach-<имя>, при коллизии добавляется числовой суффикс.
// У каждого участника и тренера может быть не более одной учётной записи.
package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/password"
	"github.com/clubfit/membership-tracker/internal/models"
)

// UserRepository определяет методы хранилища учётных записей.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByTrainerID(ctx context.Context, trainerID string) (*models.User, error)
}

// MemberRepository определяет доступ к участникам.
type MemberRepository interface {
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)
}

// TrainerRepository определяет доступ к тренерам.
type TrainerRepository interface {
	GetTrainerByID(ctx context.Context, id string) (*models.Trainer, error)
}

// Service реализует выдачу учётных записей.
type Service struct {
	users    UserRepository
	members  MemberRepository
	trainers TrainerRepository
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, members MemberRepository, trainers TrainerRepository, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		members:  members,
		trainers: trainers,
		log:      log,
	}
}

// CreateForMember создаёт учётную запись участника с ролью member.
// Логином служит email участника, пароль хешируется перед сохранением.
func (s *Service) CreateForMember(ctx context.Context, memberID, rawPassword string) (*models.User, error) {
	if strings.TrimSpace(rawPassword) == "" {
		return nil, apperr.InvalidData("Password must not be empty")
	}

	member, err := s.members.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperr.NotFound("Member not found")
	}

	existing, err := s.users.GetUserByUsername(ctx, member.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.InvalidData("Member already has credentials")
	}

	hash, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     member.Email,
		PasswordHash: hash,
		Role:         models.RoleMember,
		MemberID:     &member.ID,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("created member credentials", slog.String("member_id", member.ID))
	return &user, nil
}

// CreateForTrainer создаёт учётную запись тренера с ролью trainer
// и сгенерированным coach-логином.
func (s *Service) CreateForTrainer(ctx context.Context, trainerID, rawPassword string) (*models.User, error) {
	if strings.TrimSpace(rawPassword) == "" {
		return nil, apperr.InvalidData("Password must not be empty")
	}

	trainer, err := s.trainers.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, apperr.NotFound("Trainer not found")
	}

	existing, err := s.users.GetUserByTrainerID(ctx, trainer.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.InvalidData("Trainer already has credentials")
	}

	username, err := s.generateTrainerUsername(ctx, trainer.FirstName)
	if err != nil {
		return nil, err
	}

	hash, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleTrainer,
		TrainerID:    &trainer.ID,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("created trainer credentials",
		slog.String("trainer_id", trainer.ID),
		slog.String("username", username))
	return &user, nil
}

// generateTrainerUsername строит логин coach-<имя> в нижнем регистре без
// пробелов; при занятости перебирает суффиксы начиная с 2.
func (s *Service) generateTrainerUsername(ctx context.Context, firstName string) (string, error) {
	base := "coach-" + strings.ToLower(strings.Join(strings.Fields(firstName), ""))

	candidate := base
	counter := 2
	for {
		existing, err := s.users.GetUserByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
