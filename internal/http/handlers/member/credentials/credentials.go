// Package credentials реализует HTTP-обработчик выдачи учётной записи участнику.
package credentials

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
)

// Handler управляет HTTP-запросами выдачи учётных записей участникам.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики выдачи учётной записи.
type Service interface {
	CreateForMember(ctx context.Context, memberID, rawPassword string) (*models.User, error)
}

// Request тело запроса выдачи учётной записи.
type Request struct {
	Password string `json:"password" validate:"required"`
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
// @Summary Выдать учётную запись участнику
// @Description Логином служит email участника; пароль хешируется перед сохранением.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param id path string true "ID участника"
// @Param request body Request true "Пароль"
// @Success 200 {object} map[string]any "Созданная учётная запись"
// @Failure 400 {object} response.ErrorResponse "Учётная запись уже существует"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /members/{id}/credentials [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.credentials"
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

	user, err := h.service.CreateForMember(r.Context(), chi.URLParam(r, "id"), req.Password)
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Info("credentials creation rejected", sl.Err(err))
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to create credentials", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create credentials"))
		return
	}

	render.JSON(w, r, response.OKWithData(user))
}
