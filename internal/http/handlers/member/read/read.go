// Package read реализует HTTP-обработчик чтения карточки участника.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
)

// Handler управляет HTTP-запросами чтения участника.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения участника.
type Service interface {
	Get(ctx context.Context, id string) (*models.Member, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить участника
// @Tags Members
// @Produce  json
// @Param id path string true "ID участника"
// @Success 200 {object} map[string]any "Участник"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing member id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing member id"))
		return
	}

	member, err := h.service.Get(r.Context(), id)
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to read member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read member"))
		return
	}

	render.JSON(w, r, response.OKWithData(member))
}
