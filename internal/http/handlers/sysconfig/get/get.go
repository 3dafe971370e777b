// Package get реализует HTTP-обработчик чтения системной конфигурации клуба.
package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
)

// Handler управляет запросами чтения конфигурации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения конфигурации.
type Service interface {
	GetCurrentConfig(ctx context.Context) (*models.SystemConfig, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить системную конфигурацию
// @Description Возвращает базовую цену, льготный период и порог приостановки.
// @Tags Config
// @Produce  json
// @Success 200 {object} map[string]any "Текущая конфигурация"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /config [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sysconfig.get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cfg, err := h.service.GetCurrentConfig(r.Context())
	if err != nil {
		log.Error("failed to get system config", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get system config"))
		return
	}
	render.JSON(w, r, response.OKWithData(cfg))
}
