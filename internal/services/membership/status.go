// Package membership содержит бизнес-логику членства: чистый расчёт статуса
// по истории оплат, продление абонемента платежом и workflow пересчёта
// статуса с условным сохранением.
package membership

import (
	"time"

	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/models"
)

// CalculateStatus пересчитывает статус членства участника на дату today.
// Функция чистая: возвращает копию участника, вход не изменяется.
//
// Политика двухуровневая. Просрочка в пределах одного месяца прощается
// до graceLimit-го числа текущего месяца (обычай "оплата до 10-го" для тех,
// кто был оплачен по конец прошлого месяца). Просрочка длиннее одного
// месяца льготного окна не получает и решается по количеству полных
// месяцев неоплаты: от suspensionMonths включительно — suspended,
// иначе inactive.
func CalculateStatus(member models.Member, config models.SystemConfig, today time.Time) models.Member {
	result := member

	// "никогда не платил" — терминально inactive, льготный период не применяется
	if dateutil.IsNeverPaid(member.PaidUntil) {
		result.MembershipStatus = models.StatusInactive
		return result
	}

	day := dateutil.NormalizeToUTCDay(today)
	paidUntil := dateutil.NormalizeToUTCDay(member.PaidUntil)

	if !paidUntil.Before(day) {
		result.MembershipStatus = models.StatusActive
		return result
	}

	// оплата истекла в прошлом месяце: действует льготное окно
	// до gracePeriodDays-го числа текущего месяца включительно
	graceLimit := time.Date(day.Year(), day.Month(), config.GracePeriodDays, 0, 0, 0, 0, time.UTC)
	if dateutil.InPreviousMonth(paidUntil, day) && !day.After(graceLimit) {
		result.MembershipStatus = models.StatusActive
		return result
	}

	monthsDiff := dateutil.MonthsBetween(day, paidUntil)
	if monthsDiff >= config.SuspensionMonths {
		result.MembershipStatus = models.StatusSuspended
	} else {
		result.MembershipStatus = models.StatusInactive
	}
	return result
}
