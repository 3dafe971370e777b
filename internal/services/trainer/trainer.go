// Package trainer содержит бизнес-логику регистрации тренеров.
package trainer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/models"
)

// TrainerRepository определяет методы хранилища тренеров.
type TrainerRepository interface {
	CreateTrainer(ctx context.Context, trainer models.Trainer) (string, error)
	GetTrainerByEmail(ctx context.Context, email string) (*models.Trainer, error)
}

// Service реализует регистрацию тренеров.
type Service struct {
	trainers TrainerRepository
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(trainers TrainerRepository, log *slog.Logger) *Service {
	return &Service{
		trainers: trainers,
		log:      log,
	}
}

// Register создаёт нового тренера, отклоняя повторное использование email.
func (s *Service) Register(ctx context.Context, req models.DummyTrainer) (*models.Trainer, error) {
	if req.FirstName == "" {
		return nil, apperr.InvalidData("First name must not be empty")
	}
	if req.LastName == "" {
		return nil, apperr.InvalidData("Last name must not be empty")
	}
	if req.Email == "" {
		return nil, apperr.InvalidData("Email must not be empty")
	}

	existing, err := s.trainers.GetTrainerByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.InvalidData("Email already in use")
	}

	trainer := models.Trainer{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		HireDate:  time.Now().UTC(),
	}
	if _, err := s.trainers.CreateTrainer(ctx, trainer); err != nil {
		return nil, err
	}
	s.log.Info("registered new trainer", slog.String("trainer_id", trainer.ID))
	return &trainer, nil
}
