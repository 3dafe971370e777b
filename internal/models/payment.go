package models

import "time"

// PaymentMethod способ оплаты абонемента.
type PaymentMethod string

const (
	// MethodMercadoPago оплата через MercadoPago.
	MethodMercadoPago PaymentMethod = "mercadopago"
	// MethodCash наличные на стойке.
	MethodCash PaymentMethod = "cash"
	// MethodTransfer банковский перевод.
	MethodTransfer PaymentMethod = "transfer"
	// MethodMercadoPagoTransfer перевод внутри MercadoPago.
	MethodMercadoPagoTransfer PaymentMethod = "mercadopago_transfer"
)

// Payment представляет платёж участника. Запись неизменяема:
// ядро только создаёт платежи, никогда не обновляет их.
type Payment struct {
	ID             string        `json:"id"`
	MemberID       string        `json:"member_id"`
	Amount         float64       `json:"amount"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	PaymentDate    time.Time     `json:"payment_date"`
	MonthsCovered  int           `json:"months_covered"`
	IsProportional bool          `json:"is_proportional"`
	PromotionID    *string       `json:"promotion_id,omitempty"`
}

// DummyPayment используется для приёма данных платежа из JSON-запроса.
// Дата приходит строкой в формате 02-01-2006 и парсится вручную.
type DummyPayment struct {
	MemberID       string  `json:"member_id" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required,oneof=mercadopago cash transfer mercadopago_transfer"`
	PaymentDate    string  `json:"payment_date" validate:"required"`
	MonthsCovered  int     `json:"months_covered" validate:"required,gt=0"`
	IsProportional bool    `json:"is_proportional"`
	PromotionID    *string `json:"promotion_id,omitempty"`
}

// CreatePayment данные нового платежа после валидации входа.
type CreatePayment struct {
	MemberID       string
	Amount         float64
	PaymentMethod  PaymentMethod
	PaymentDate    time.Time
	MonthsCovered  int
	IsProportional bool
	PromotionID    *string
}
