package membership

import (
	"math"
	"time"

	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/models"
)

// ApplyPayment продлевает абонемент участника платежом. Функция чистая,
// без ввода-вывода; возвращает копию участника.
//
// Базовая дата — текущий PaidUntil, если он в будущем (неистраченное время
// переносится), иначе нормализованное now. Участник с меткой "никогда не
// платил" начинает отсчёт с сегодняшнего дня. Успешный платёж безусловно
// активирует членство.
func ApplyPayment(member models.Member, payment models.Payment, now time.Time) models.Member {
	day := dateutil.NormalizeToUTCDay(now)

	base := day
	if !dateutil.IsNeverPaid(member.PaidUntil) {
		paidUntil := dateutil.NormalizeToUTCDay(member.PaidUntil)
		if paidUntil.After(day) {
			base = paidUntil
		}
	}

	result := member
	if payment.IsProportional {
		result.PaidUntil = base.AddDate(0, 0, proportionalDays(day))
	} else {
		result.PaidUntil = dateutil.AddMonths(base, payment.MonthsCovered)
	}
	result.MembershipStatus = models.StatusActive
	return result
}

// ProportionalAmount рассчитывает стоимость частичного месяца: базовая цена
// пропорционально оставшимся дням месяца, с округлением вверх.
func ProportionalAmount(basePrice float64, now time.Time) float64 {
	day := dateutil.NormalizeToUTCDay(now)
	remaining := dateutil.DaysRemainingInMonth(day)
	total := dateutil.DaysInMonth(day.Year(), day.Month())
	return math.Ceil(basePrice * float64(remaining) / float64(total))
}

// proportionalDays переводит остаток месяца в дни покрытия из расчёта
// условного 30-дневного месяца.
func proportionalDays(day time.Time) int {
	remaining := dateutil.DaysRemainingInMonth(day)
	total := dateutil.DaysInMonth(day.Year(), day.Month())
	return int(math.Ceil(float64(remaining) / float64(total) * 30))
}
