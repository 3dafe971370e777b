package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clubfit/membership-tracker/internal/http/middlewarectx"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/payment"
)

// MockService реализует интерфейс create.Service
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

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := `{
		"member_id": "m-1",
		"amount": 28000,
		"payment_method": "cash",
		"payment_date": "15-01-2025",
		"months_covered": 1
	}`

	tests := []struct {
		name           string
		body           string
		role           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный платёж",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, mock.MatchedBy(func(req models.CreatePayment) bool {
					return req.MemberID == "m-1" &&
						req.PaymentMethod == models.MethodCash &&
						req.PaymentDate.Day() == 15
				})).Return(&payment.Result{
					Payment: models.Payment{ID: "p-1", MemberID: "m-1"},
					Member:  models.Member{ID: "m-1", MembershipStatus: models.StatusActive},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"membership_status":"active"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name: "неизвестный способ оплаты",
			body: `{
				"member_id": "m-1",
				"amount": 28000,
				"payment_method": "bitcoin",
				"payment_date": "15-01-2025",
				"months_covered": 1
			}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "некорректный формат даты",
			body: `{
				"member_id": "m-1",
				"amount": 28000,
				"payment_method": "cash",
				"payment_date": "2025-01-15",
				"months_covered": 1
			}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid payment date`,
		},
		{
			name: "дубликат месяца",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, mock.Anything).
					Return(nil, apperr.InvalidData("Member already paid for this month"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Member already paid for this month"`,
		},
		{
			name: "участник не найден",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, mock.Anything).
					Return(nil, apperr.NotFound("Member not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Member not found"`,
		},
		{
			name:           "роль member не может принимать платежи",
			body:           validBody,
			role:           models.RoleMember,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"Insufficient permissions to process payments"`,
		},
		{
			name: "тренер принимает платёж",
			body: validBody,
			role: models.RoleTrainer,
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, mock.Anything).Return(&payment.Result{
					Payment: models.Payment{ID: "p-2", MemberID: "m-1"},
					Member:  models.Member{ID: "m-1", MembershipStatus: models.StatusActive},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"p-2"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			role := tt.role
			if role == "" {
				role = models.RoleAdmin
			}
			req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Role, role))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
