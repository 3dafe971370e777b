// Package create реализует HTTP-обработчик приёма платежа.
//
// Handler принимает JSON-запрос с данными платежа, валидирует структуру,
// парсит дату и передаёт платёж в workflow обработки. Бизнес-ошибки
// (дубликат месяца, отсутствующий участник) возвращаются с исходным текстом.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/clubfit/membership-tracker/internal/http/middlewarectx"
	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/payment"
)

// Handler управляет HTTP-запросами приёма платежей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс workflow обработки платежа.
type Service interface {
	Process(ctx context.Context, req models.CreatePayment) (*payment.Result, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Принять платёж
// @Description Валидирует платёж, сохраняет его и продлевает членство участника. Не более одного платежа на участника за календарный месяц.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Данные платежа"
// @Success 200 {object} map[string]any "Платёж и участник с продлённым абонементом"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или дубликат месяца"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	role, _ := r.Context().Value(middlewarectx.Role).(string)
	if role != models.RoleAdmin && role != models.RoleTrainer {
		log.Error("insufficient role for payment processing", slog.String("role", role))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("Insufficient permissions to process payments"))
		return
	}

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	paymentDate, err := time.Parse("02-01-2006", req.PaymentDate)
	if err != nil {
		log.Error("invalid payment date", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid payment date, expected format 02-01-2006"))
		return
	}

	result, err := h.service.Process(r.Context(), models.CreatePayment{
		MemberID:       req.MemberID,
		Amount:         req.Amount,
		PaymentMethod:  models.PaymentMethod(req.PaymentMethod),
		PaymentDate:    paymentDate,
		MonthsCovered:  req.MonthsCovered,
		IsProportional: req.IsProportional,
		PromotionID:    req.PromotionID,
	})
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Info("payment rejected", sl.Err(err))
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to process payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not process payment"))
		return
	}

	log.Info("payment accepted", slog.String("payment_id", result.Payment.ID))
	render.JSON(w, r, response.OKWithData(result))
}
