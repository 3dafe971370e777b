// Package webhook реализует приём уведомлений MercadoPago об оплате.
//
// Подтверждённый провайдером платёж проходит через тот же workflow
// обработки, что и платёж, принятый на стойке.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/mercadopago"
	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/payment"
)

// Service описывает интерфейс workflow обработки платежа.
type Service interface {
	Process(ctx context.Context, req models.CreatePayment) (*payment.Result, error)
}

// Handler управляет webhook-запросами провайдера.
type Handler struct {
	log           *slog.Logger
	service       Service
	webhookSecret string
}

// New создает новый Handler с переданными логгером, сервисом и секретом подписи.
func New(log *slog.Logger, service Service, secret string) *Handler {
	return &Handler{
		log:           log,
		service:       service,
		webhookSecret: secret,
	}
}

// verifySignature проверяет HMAC-SHA256 подпись тела запроса (X-Api-Signature).
func (h *Handler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write(body)
	expectedSig := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expectedSig), []byte(signature))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.webhook"
	log := h.log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read webhook body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get("X-Api-Signature")
	if signature == "" || !h.verifySignature(body, signature) {
		log.Error("invalid or missing webhook signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var notification mercadopago.Notification
	if err := json.Unmarshal(body, &notification); err != nil {
		log.Error("failed to decode webhook payload", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// провайдер повторяет уведомления до подтверждения, поэтому
	// неподходящие статусы подтверждаются без обработки
	if notification.Data.Status != mercadopago.StatusApproved {
		log.Info("ignoring webhook with non-approved status",
			slog.String("status", notification.Data.Status))
		w.WriteHeader(http.StatusOK)
		return
	}

	memberID := notification.Data.Metadata["member_id"]
	monthsCovered, err := strconv.Atoi(notification.Data.Metadata["months_covered"])
	if err != nil || monthsCovered <= 0 {
		monthsCovered = 1
	}

	paymentDate := time.Now().UTC()
	if parsed, err := time.Parse("2006-01-02", notification.Data.DateApproved); err == nil {
		paymentDate = parsed
	}

	result, err := h.service.Process(r.Context(), models.CreatePayment{
		MemberID:      memberID,
		Amount:        notification.Data.Amount,
		PaymentMethod: models.MethodMercadoPago,
		PaymentDate:   paymentDate,
		MonthsCovered: monthsCovered,
	})
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Info("webhook payment rejected", sl.Err(err))
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to process webhook payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.Info("webhook payment processed",
		slog.String("payment_id", result.Payment.ID),
		slog.String("provider_id", notification.Data.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"payment_id": result.Payment.ID,
	}))
}
