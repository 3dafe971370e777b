package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/payment"
)

// MockService реализует интерфейс webhook.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Process(ctx context.Context, req models.CreatePayment) (*payment.Result, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*payment.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

const testSecret = "webhook-test-secret"

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func approvedNotification() string {
	return `{
		"action": "payment.updated",
		"data": {
			"id": "mp-123",
			"status": "approved",
			"transaction_amount": 28000,
			"payment_method_id": "account_money",
			"date_approved": "2025-01-15",
			"metadata": {"member_id": "m-1", "months_covered": "2"}
		}
	}`
}

func TestWebhookHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	t.Run("подтверждённый платёж обрабатывается", func(t *testing.T) {
		body := approvedNotification()

		mockService := new(MockService)
		mockService.On("Process", mock.Anything, mock.MatchedBy(func(req models.CreatePayment) bool {
			return req.MemberID == "m-1" &&
				req.Amount == 28000 &&
				req.MonthsCovered == 2 &&
				req.PaymentMethod == models.MethodMercadoPago &&
				req.PaymentDate.Year() == 2025 && req.PaymentDate.Day() == 15
		})).Return(&payment.Result{
			Payment: models.Payment{ID: "p-1"},
		}, nil).Once()

		handler := New(logger, mockService, testSecret)

		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
		req.Header.Set("X-Api-Signature", sign(body))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payment_id":"p-1"`)
		mockService.AssertExpectations(t)
	})

	t.Run("неверная подпись отклоняется", func(t *testing.T) {
		body := approvedNotification()

		mockService := new(MockService)
		handler := New(logger, mockService, testSecret)

		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
		req.Header.Set("X-Api-Signature", "bm90LWEtdmFsaWQtc2ln")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
	})

	t.Run("отсутствующая подпись отклоняется", func(t *testing.T) {
		body := approvedNotification()

		mockService := new(MockService)
		handler := New(logger, mockService, testSecret)

		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
	})

	t.Run("неподтверждённый статус подтверждается без обработки", func(t *testing.T) {
		body := `{
			"action": "payment.updated",
			"data": {"id": "mp-124", "status": "pending", "metadata": {"member_id": "m-1"}}
		}`

		mockService := new(MockService)
		handler := New(logger, mockService, testSecret)

		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(body))
		req.Header.Set("X-Api-Signature", sign(body))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
	})
}
