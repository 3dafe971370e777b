package models

import "time"

// SystemConfig системная конфигурация клуба. Синглтон: в хранилище
// существует ровно одна запись, лениво создаваемая со значениями по умолчанию.
type SystemConfig struct {
	BasePrice       float64   `json:"base_price"`
	GracePeriodDays int       `json:"grace_period_days"`
	SuspensionMonths int      `json:"suspension_months"`
	UpdatedAt       time.Time `json:"updated_at"`
	UpdatedBy       string    `json:"updated_by"`
}

// Значения конфигурации по умолчанию.
const (
	DefaultBasePrice        = 28000
	DefaultGracePeriodDays  = 10
	DefaultSuspensionMonths = 3
)

// DummySystemConfig используется для приёма обновления конфигурации из JSON.
type DummySystemConfig struct {
	BasePrice        float64 `json:"base_price" validate:"required,gt=0"`
	GracePeriodDays  int     `json:"grace_period_days" validate:"required,gt=0"`
	SuspensionMonths int     `json:"suspension_months" validate:"required,gt=0"`
}
