// Package models содержит доменные структуры клуба: участники, платежи,
// тренеры, пользователи и системная конфигурация.
package models

import "time"

// MembershipStatus статус членства участника.
type MembershipStatus string

const (
	// StatusActive членство оплачено либо действует льготный период.
	StatusActive MembershipStatus = "active"
	// StatusInactive оплата отсутствует или просрочена.
	StatusInactive MembershipStatus = "inactive"
	// StatusSuspended оплата отсутствует дольше порога приостановки.
	StatusSuspended MembershipStatus = "suspended"
	// StatusDeleted терминальный статус, выход из него запрещён.
	StatusDeleted MembershipStatus = "deleted"
)

// Member представляет участника клуба.
//
// Поле MembershipStatus является производным: оно всегда может быть
// пересчитано из PaidUntil, системной конфигурации и текущей даты.
// Хранимое значение — кеш последнего пересчёта.
// PaidUntil равное нулевой метке Unix означает "никогда не платил".
type Member struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	Weight           float64          `json:"weight"`
	Age              int              `json:"age"`
	JoinDate         time.Time        `json:"join_date"`
	MembershipStatus MembershipStatus `json:"membership_status"`
	PaidUntil        time.Time        `json:"paid_until"`
}

// DummyMember используется для приёма данных регистрации из JSON-запроса.
type DummyMember struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Weight    float64 `json:"weight" validate:"required,gt=0"`
	Age       int     `json:"age" validate:"required,gt=0"`
}

// MemberUpdate частичное обновление участника: заполненные поля
// перезаписываются, nil-поля остаются нетронутыми.
type MemberUpdate struct {
	MembershipStatus *MembershipStatus
	PaidUntil        *time.Time
}

// StatusChange фиксирует административную смену статуса участника.
// Тип существует в модели данных, но ядро его не персистирует.
type StatusChange struct {
	MemberID   string           `json:"member_id"`
	OldStatus  MembershipStatus `json:"old_status"`
	NewStatus  MembershipStatus `json:"new_status"`
	ChangedBy  string           `json:"changed_by"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
