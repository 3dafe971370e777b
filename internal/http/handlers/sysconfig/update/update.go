// Package update реализует HTTP-обработчик изменения системной конфигурации.
//
// Менять конфигурацию разрешено только пользователю с ролью admin.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/clubfit/membership-tracker/internal/http/middlewarectx"
	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
)

// Handler управляет запросами изменения конфигурации.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс обновления конфигурации.
type Service interface {
	Update(ctx context.Context, req models.DummySystemConfig, updatedBy string) (*models.SystemConfig, error)
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
// @Summary Изменить системную конфигурацию
// @Description Доступно только администраторам. Новые пороги применяются при
// @Description последующих пересчётах статусов, уже сохранённые статусы не пересчитываются.
// @Tags Config
// @Accept  json
// @Produce  json
// @Param request body models.DummySystemConfig true "Новая конфигурация"
// @Success 200 {object} map[string]any "Сохранённая конфигурация"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /config [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sysconfig.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	role, _ := r.Context().Value(middlewarectx.Role).(string)
	if role != models.RoleAdmin {
		log.Info("config update forbidden", slog.String("role", role))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("insufficient permissions"))
		return
	}

	var req models.DummySystemConfig
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

	username, _ := r.Context().Value(middlewarectx.User).(string)
	cfg, err := h.service.Update(r.Context(), req, username)
	if err != nil {
		log.Error("failed to update system config", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update system config"))
		return
	}

	log.Info("system config updated", slog.String("updated_by", username))
	render.JSON(w, r, response.OKWithData(cfg))
}
