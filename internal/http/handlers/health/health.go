// Package health реализует HTTP-обработчик проверки готовности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
)

// Pinger описывает проверку доступности хранилища.
type Pinger interface {
	CheckDatabaseReady(ctx context.Context) error
}

// Handler управляет запросами проверки готовности.
type Handler struct {
	log     *slog.Logger
	storage Pinger
}

// New создает новый Handler с переданными логгером и хранилищем.
func New(log *slog.Logger, storage Pinger) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
	}
}

// ServeHTTP godoc
// @Summary Проверка готовности сервиса
// @Tags System
// @Produce  json
// @Success 200 {object} map[string]any "Сервис готов"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if err := h.storage.CheckDatabaseReady(r.Context()); err != nil {
		h.log.Error("database is not ready", slog.String("op", op), sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("database is not ready"))
		return
	}
	render.JSON(w, r, response.OKWithData(map[string]string{"status": "ready"}))
}
