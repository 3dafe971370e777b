// Package dateutil содержит календарные операции, используемые при расчёте
// статуса членства и продлении абонементов.
//
// Все сравнения дат в системе выполняются с точностью до дня в UTC:
// время суток отбрасывается, чтобы исключить сдвиг на день из-за
// часовых поясов.
package dateutil

import "time"

// NeverPaid метка "никогда не платил": нулевой момент Unix.
var NeverPaid = time.Unix(0, 0).UTC()

// IsNeverPaid сообщает, равна ли дата метке "никогда не платил".
func IsNeverPaid(t time.Time) bool {
	return t.Unix() == 0
}

// NormalizeToUTCDay отбрасывает время суток, возвращая полночь UTC того же дня.
func NormalizeToUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths прибавляет n календарных месяцев с прижатием к концу месяца:
// 31 января + 1 месяц = 28/29 февраля, а не 2/3 марта.
func AddMonths(t time.Time, n int) time.Time {
	t = NormalizeToUTCDay(t)
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + n
	newYear := year + totalMonths/12
	newMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 {
		// целочисленное деление в Go округляет к нулю
		newYear = year + (totalMonths-11)/12
		newMonth = time.Month((totalMonths%12+12)%12 + 1)
	}

	if last := DaysInMonth(newYear, newMonth); day > last {
		day = last
	}
	return time.Date(newYear, newMonth, day, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween возвращает количество полных календарных месяцев между later
// и earlier. Если день later меньше дня earlier, месяц ещё не прошёл целиком
// и вычитается единица.
func MonthsBetween(later, earlier time.Time) int {
	later = NormalizeToUTCDay(later)
	earlier = NormalizeToUTCDay(earlier)

	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if later.Day() < earlier.Day() {
		months--
	}
	return months
}

// MonthStart возвращает первый день месяца даты t, полночь UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameMonth сообщает, принадлежат ли обе даты одному календарному месяцу.
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// InPreviousMonth сообщает, попадает ли дата t в календарный месяц,
// непосредственно предшествующий месяцу ref, с учётом перехода
// декабрь -> январь.
func InPreviousMonth(t, ref time.Time) bool {
	prev := MonthStart(ref).AddDate(0, 0, -1)
	return SameMonth(t, prev)
}

// DaysInMonth возвращает количество дней в месяце.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysRemainingInMonth возвращает количество дней до конца месяца,
// включая сам день t.
func DaysRemainingInMonth(t time.Time) int {
	t = NormalizeToUTCDay(t)
	return DaysInMonth(t.Year(), t.Month()) - t.Day() + 1
}
