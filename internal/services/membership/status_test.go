package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultConfig() models.SystemConfig {
	return models.SystemConfig{
		BasePrice:        models.DefaultBasePrice,
		GracePeriodDays:  models.DefaultGracePeriodDays,
		SuspensionMonths: models.DefaultSuspensionMonths,
	}
}

func memberPaidUntil(t time.Time) models.Member {
	return models.Member{
		ID:               "m-1",
		MembershipStatus: models.StatusActive,
		PaidUntil:        t,
	}
}

func TestCalculateStatus(t *testing.T) {
	tests := []struct {
		name      string
		paidUntil time.Time
		today     time.Time
		want      models.MembershipStatus
	}{
		{
			name:      "paid until today is active",
			paidUntil: date(2025, time.March, 15),
			today:     date(2025, time.March, 15),
			want:      models.StatusActive,
		},
		{
			name:      "paid into the future is active",
			paidUntil: date(2025, time.June, 1),
			today:     date(2025, time.March, 15),
			want:      models.StatusActive,
		},
		{
			name:      "paid through january, checked feb 10 within grace",
			paidUntil: date(2025, time.January, 31),
			today:     date(2025, time.February, 10),
			want:      models.StatusActive,
		},
		{
			name:      "paid through january, checked feb 11 past grace",
			paidUntil: date(2025, time.January, 31),
			today:     date(2025, time.February, 11),
			want:      models.StatusInactive,
		},
		{
			name:      "grace crosses year boundary",
			paidUntil: date(2024, time.December, 31),
			today:     date(2025, time.January, 10),
			want:      models.StatusActive,
		},
		{
			name:      "expired two months ago is inactive",
			paidUntil: date(2025, time.January, 15),
			today:     date(2025, time.March, 20),
			want:      models.StatusInactive,
		},
		{
			name:      "two months and 29 days is still inactive",
			paidUntil: date(2025, time.February, 1),
			today:     date(2025, time.April, 30),
			want:      models.StatusInactive,
		},
		{
			name:      "exactly three months is suspended",
			paidUntil: date(2025, time.February, 1),
			today:     date(2025, time.May, 1),
			want:      models.StatusSuspended,
		},
		{
			name:      "long expired is suspended",
			paidUntil: date(2024, time.June, 1),
			today:     date(2025, time.May, 1),
			want:      models.StatusSuspended,
		},
		{
			name:      "never paid is inactive",
			paidUntil: dateutil.NeverPaid,
			today:     date(2025, time.March, 15),
			want:      models.StatusInactive,
		},
		{
			name: "expired two months ago gets no grace even early in month",
			// льготное окно действует только для прошлого месяца
			paidUntil: date(2025, time.January, 31),
			today:     date(2025, time.March, 5),
			want:      models.StatusInactive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStatus(memberPaidUntil(tt.paidUntil), defaultConfig(), tt.today)
			assert.Equal(t, tt.want, got.MembershipStatus)
		})
	}
}

func TestCalculateStatusDoesNotMutateInput(t *testing.T) {
	member := memberPaidUntil(date(2024, time.June, 1))
	member.MembershipStatus = models.StatusActive

	got := CalculateStatus(member, defaultConfig(), date(2025, time.May, 1))

	assert.Equal(t, models.StatusSuspended, got.MembershipStatus)
	assert.Equal(t, models.StatusActive, member.MembershipStatus)
}

func TestCalculateStatusCustomConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.GracePeriodDays = 5
	cfg.SuspensionMonths = 1

	// 6-е число уже за пределами сокращённого льготного окна,
	// а порог приостановки в один месяц достигнут
	got := CalculateStatus(memberPaidUntil(date(2025, time.January, 31)), cfg, date(2025, time.March, 6))
	assert.Equal(t, models.StatusSuspended, got.MembershipStatus)

	got = CalculateStatus(memberPaidUntil(date(2025, time.February, 28)), cfg, date(2025, time.March, 5))
	assert.Equal(t, models.StatusActive, got.MembershipStatus)
}

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 0, DaysRemaining(memberPaidUntil(dateutil.NeverPaid), date(2025, time.March, 15)))
	assert.Equal(t, 0, DaysRemaining(memberPaidUntil(date(2025, time.March, 1)), date(2025, time.March, 15)))
	assert.Equal(t, 0, DaysRemaining(memberPaidUntil(date(2025, time.March, 15)), date(2025, time.March, 15)))
	assert.Equal(t, 17, DaysRemaining(memberPaidUntil(date(2025, time.April, 1)), date(2025, time.March, 15)))
}
