// Package verify реализует HTTP-обработчик пересчёта статуса членства.
//
// Endpoint — источник истины об актуальном статусе: хранимое поле не
// используется вслепую, статус пересчитывается по сроку оплаты и
// системной конфигурации.
package verify

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
	"github.com/clubfit/membership-tracker/internal/services/membership"
)

// Handler управляет HTTP-запросами пересчёта статуса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс workflow пересчёта статуса.
type Service interface {
	Verify(ctx context.Context, memberID string) (*models.Member, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пересчитать статус членства
// @Description Пересчитывает статус по сроку оплаты и конфигурации; сохраняет, только если статус изменился.
// @Tags Members
// @Produce  json
// @Param id path string true "ID участника"
// @Success 200 {object} map[string]any "Участник с актуальным статусом и остатком дней"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /members/{id}/verify-status [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.verify"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	member, err := h.service.Verify(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to verify membership status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not verify membership status"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"member":         member,
		"days_remaining": membership.DaysRemaining(*member, time.Now()),
	}))
}
