// Package register реализует HTTP-обработчик регистрации нового участника.
//
// Handler принимает JSON-запрос с данными участника, валидирует их, вызывает
// бизнес-логику регистрации и возвращает созданного участника в JSON-формате.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/sl"
	"github.com/clubfit/membership-tracker/internal/models"
)

// Handler управляет HTTP-запросами регистрации участников.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации участника.
type Service interface {
	Register(ctx context.Context, req models.DummyMember) (*models.Member, error)
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
// @Summary Зарегистрировать нового участника
// @Description Создает участника со статусом inactive и пустой историей оплат.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param request body models.DummyMember true "Данные нового участника"
// @Success 200 {object} map[string]any "Созданный участник"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMember
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

	member, err := h.service.Register(r.Context(), req)
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			log.Info("registration rejected", sl.Err(err))
			w.WriteHeader(response.AppErrorStatus(appErr))
			render.JSON(w, r, response.Error(appErr.Message))
			return
		}
		log.Error("failed to register member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register member"))
		return
	}

	log.Info("member registered", slog.String("member_id", member.ID))
	render.JSON(w, r, response.OKWithData(member))
}
