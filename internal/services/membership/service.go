package membership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/metrics"
	"github.com/clubfit/membership-tracker/internal/models"
)

// MemberRepository определяет методы хранилища участников,
// необходимые для пересчёта статуса.
type MemberRepository interface {
	// GetMemberByID возвращает участника либо nil, если запись отсутствует.
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)
	// UpdateMemberFields обновляет только переданные поля участника.
	UpdateMemberFields(ctx context.Context, id string, fields models.MemberUpdate) (int, error)
}

// ConfigRepository определяет доступ к системной конфигурации.
type ConfigRepository interface {
	// GetCurrentConfig возвращает конфигурацию, лениво создавая значения по умолчанию.
	GetCurrentConfig(ctx context.Context) (*models.SystemConfig, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует workflow пересчёта статуса членства.
type Service struct {
	members MemberRepository
	configs ConfigRepository
	cache   Cache
	log     *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(members MemberRepository, configs ConfigRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		members: members,
		configs: configs,
		cache:   cache,
		log:     log,
	}
}

// Verify пересчитывает статус участника и сохраняет его, только если статус
// изменился. Повторный вызов без новых платежей и без хода времени записи
// не порождает. Возвращает участника с актуальным статусом.
func (s *Service) Verify(ctx context.Context, memberID string) (*models.Member, error) {
	if memberID == "" {
		return nil, apperr.InvalidData("Member ID must not be empty")
	}

	member, err := s.members.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperr.NotFound("Member not found")
	}

	config, err := s.configs.GetCurrentConfig(ctx)
	if err != nil {
		return nil, err
	}

	updated := CalculateStatus(*member, *config, time.Now())

	if updated.MembershipStatus != member.MembershipStatus {
		fields := models.MemberUpdate{MembershipStatus: &updated.MembershipStatus}
		if _, err := s.members.UpdateMemberFields(ctx, member.ID, fields); err != nil {
			return nil, err
		}
		metrics.StatusTransitions.WithLabelValues(
			string(member.MembershipStatus), string(updated.MembershipStatus)).Inc()
		s.log.Info("membership status updated",
			slog.String("member_id", member.ID),
			slog.String("old", string(member.MembershipStatus)),
			slog.String("new", string(updated.MembershipStatus)))

		cacheKey := fmt.Sprintf("member:%s", member.ID)
		if err := s.cache.Invalidate(cacheKey); err != nil {
			s.log.Warn("failed to invalidate member cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	return &updated, nil
}

// DaysRemaining возвращает количество оплаченных дней, оставшихся у участника
// на сегодня. Для истёкших и никогда не оплаченных абонементов — 0.
func DaysRemaining(member models.Member, today time.Time) int {
	if dateutil.IsNeverPaid(member.PaidUntil) {
		return 0
	}
	day := dateutil.NormalizeToUTCDay(today)
	paidUntil := dateutil.NormalizeToUTCDay(member.PaidUntil)
	if paidUntil.Before(day) {
		return 0
	}
	return int(paidUntil.Sub(day).Hours() / 24)
}
