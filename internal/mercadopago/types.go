// Package mercadopago содержит типы уведомлений платёжного провайдера MercadoPago.
package mercadopago

// Notification webhook-уведомление о платеже.
type Notification struct {
	Action string `json:"action"`
	Data   struct {
		ID            string            `json:"id"`
		Status        string            `json:"status"`
		Amount        float64           `json:"transaction_amount"`
		PaymentMethod string            `json:"payment_method_id"`
		DateApproved  string            `json:"date_approved"` // формат 2006-01-02
		Metadata      map[string]string `json:"metadata"`      // member_id, months_covered
	} `json:"data"`
}

// Статусы платежа провайдера.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)
