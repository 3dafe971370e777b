// Package status реализует HTTP-обработчик административной смены статуса
// участника в обход платёжной логики.
package status

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/member"
)

// Handler управляет HTTP-запросами смены статуса участника.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены статуса.
type Service interface {
	ChangeStatus(ctx context.Context, req member.ChangeStatusRequest) (*models.Member, error)
}

// Request тело запроса смены статуса.
type Request struct {
	NewStatus         string `json:"new_status" validate:"required,oneof=active inactive suspended deleted"`
	RequestedByUserID string `json:"requested_by_user_id" validate:"required"`
	Reason            string `json:"reason,omitempty"`
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
// @Summary Сменить статус участника
// @Description Прямая смена статуса активным пользователем с ролью trainer или admin. Перевод в deleted доступен только admin.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param id path string true "ID участника"
// @Param request body Request true "Новый статус"
// @Success 200 {object} map[string]any "Участник с новым статусом"
// @Failure 400 {object} response.ErrorResponse "Недопустимый переход или недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /members/{id}/status [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	result, err := h.service.ChangeStatus(r.Context(), member.ChangeStatusRequest{
		MemberID:          chi.URLParam(r, "id"),
		NewStatus:         models.MembershipStatus(req.NewStatus),
		RequestedByUserID: req.RequestedByUserID,
		Reason:            req.Reason,
	})
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Info("status change rejected", sl.Err(err))
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to change member status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not change member status"))
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}
