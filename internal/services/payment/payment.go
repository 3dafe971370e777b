// Package payment реализует workflow обработки платежа: валидация,
// сохранение платежа и продление членства участника.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/metrics"
	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/membership"
)

// MemberRepository определяет методы хранилища участников для платёжного workflow.
type MemberRepository interface {
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)
	UpdateMemberFields(ctx context.Context, id string, fields models.MemberUpdate) (int, error)
}

// PaymentRepository определяет методы хранилища платежей.
type PaymentRepository interface {
	// CreatePayment сохраняет новый платёж. Платежи неизменяемы.
	CreatePayment(ctx context.Context, payment models.Payment) (string, error)
	// ListPaymentsByMemberID возвращает все платежи участника.
	ListPaymentsByMemberID(ctx context.Context, memberID string) ([]*models.Payment, error)
	// GetPaymentByMemberIDAndMonth возвращает платёж участника за календарный
	// месяц либо nil.
	GetPaymentByMemberIDAndMonth(ctx context.Context, memberID string, month time.Time) (*models.Payment, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику обработки платежей.
type Service struct {
	payments PaymentRepository
	members  MemberRepository
	cache    Cache
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(payments PaymentRepository, members MemberRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		payments: payments,
		members:  members,
		cache:    cache,
		log:      log,
	}
}

// Result результат обработки платежа: сохранённый платёж и участник
// с продлённым абонементом.
type Result struct {
	Payment models.Payment `json:"payment"`
	Member  models.Member  `json:"updated_member"`
}

// Process обрабатывает платёж. До успешной валидации запись не выполняется.
// Платёж и участник сохраняются двумя независимыми записями; если вторая
// не удалась, рассинхронизация устраняется последующим пересчётом статуса,
// а не транзакционным откатом.
func (s *Service) Process(ctx context.Context, req models.CreatePayment) (*Result, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	// валидатор подтвердил только существование, данные загружаются заново
	member, err := s.members.GetMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		// участник удалён между проверкой валидатора и повторным чтением
		return nil, apperr.NotFound("Member not found")
	}

	payment := models.Payment{
		ID:             uuid.New().String(),
		MemberID:       req.MemberID,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		PaymentDate:    req.PaymentDate,
		MonthsCovered:  req.MonthsCovered,
		IsProportional: req.IsProportional,
		PromotionID:    req.PromotionID,
	}

	updated := membership.ApplyPayment(*member, payment, time.Now())

	if _, err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	fields := models.MemberUpdate{
		MembershipStatus: &updated.MembershipStatus,
		PaidUntil:        &updated.PaidUntil,
	}
	if _, err := s.members.UpdateMemberFields(ctx, updated.ID, fields); err != nil {
		return nil, err
	}

	metrics.PaymentsProcessed.WithLabelValues(string(payment.PaymentMethod)).Inc()
	s.log.Info("payment processed",
		slog.String("payment_id", payment.ID),
		slog.String("member_id", updated.ID),
		slog.Time("paid_until", updated.PaidUntil))

	cacheKey := fmt.Sprintf("member:%s", updated.ID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate member cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &Result{Payment: payment, Member: updated}, nil
}

// List возвращает все платежи участника.
func (s *Service) List(ctx context.Context, memberID string) ([]*models.Payment, error) {
	return s.payments.ListPaymentsByMemberID(ctx, memberID)
}
