package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/clubfit/membership-tracker/internal/http/response"
	"github.com/clubfit/membership-tracker/internal/models"
)

// MemberAccessMiddleware ограничивает доступ к маршрутам /members/{id}:
// тренеры и администраторы проходят к любому участнику, пользователь с ролью
// member — только к собственной записи.
func MemberAccessMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.MemberAccessMiddleware"

			role, _ := r.Context().Value(Role).(string)
			if role == models.RoleMember {
				memberID, _ := r.Context().Value(MemberID).(string)
				if memberID == "" || memberID != chi.URLParam(r, "id") {
					log := log.With(
						slog.String("op", op),
						slog.String("request_id", middleware.GetReqID(r.Context())),
					)
					log.Error("member attempted to access another member's record")
					w.WriteHeader(http.StatusForbidden)
					render.JSON(w, r, response.Error("Access denied"))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
