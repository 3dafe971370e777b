package membershiptracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/clubfit/membership-tracker/internal/http/handlers/auth/login"
	"github.com/clubfit/membership-tracker/internal/http/handlers/health"
	membercredentials "github.com/clubfit/membership-tracker/internal/http/handlers/member/credentials"
	memberlist "github.com/clubfit/membership-tracker/internal/http/handlers/member/list"
	memberread "github.com/clubfit/membership-tracker/internal/http/handlers/member/read"
	memberregister "github.com/clubfit/membership-tracker/internal/http/handlers/member/register"
	memberstatus "github.com/clubfit/membership-tracker/internal/http/handlers/member/status"
	memberverify "github.com/clubfit/membership-tracker/internal/http/handlers/member/verify"
	paymentcreate "github.com/clubfit/membership-tracker/internal/http/handlers/payment/create"
	paymentlist "github.com/clubfit/membership-tracker/internal/http/handlers/payment/list"
	paymentwebhook "github.com/clubfit/membership-tracker/internal/http/handlers/payment/webhook"
	sysconfigget "github.com/clubfit/membership-tracker/internal/http/handlers/sysconfig/get"
	sysconfigupdate "github.com/clubfit/membership-tracker/internal/http/handlers/sysconfig/update"
	trainercredentials "github.com/clubfit/membership-tracker/internal/http/handlers/trainer/credentials"
	trainerregister "github.com/clubfit/membership-tracker/internal/http/handlers/trainer/register"
	"github.com/clubfit/membership-tracker/internal/http/middlewarectx"
	authservice "github.com/clubfit/membership-tracker/internal/services/auth"
	credentialsservice "github.com/clubfit/membership-tracker/internal/services/credentials"
	memberservice "github.com/clubfit/membership-tracker/internal/services/member"
	membershipservice "github.com/clubfit/membership-tracker/internal/services/membership"
	paymentservice "github.com/clubfit/membership-tracker/internal/services/payment"
	sysconfigservice "github.com/clubfit/membership-tracker/internal/services/sysconfig"
	trainerservice "github.com/clubfit/membership-tracker/internal/services/trainer"
	"github.com/clubfit/membership-tracker/internal/storage/repository"
)

// Services собирает все сервисы, необходимые HTTP-слою.
type Services struct {
	Member      *memberservice.Service
	Membership  *membershipservice.Service
	Payment     *paymentservice.Service
	Trainer     *trainerservice.Service
	Credentials *credentialsservice.Service
	SysConfig   *sysconfigservice.Service
	Auth        *authservice.Service
	Storage     *repository.Storage
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(logger *slog.Logger, svc *Services, webhookSecret string) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Get("/health", health.New(logger, svc.Storage).ServeHTTP)

		// Webhook платёжного провайдера: аутентификация подписью тела
		r.Post("/payments/webhook", paymentwebhook.New(logger, svc.Payment, webhookSecret).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/members", memberregister.New(logger, svc.Member).ServeHTTP)
			r.Get("/members", memberlist.New(logger, svc.Member).ServeHTTP)

			// Роль member получает доступ только к собственной записи
			r.Route("/members/{id}", func(r chi.Router) {
				r.Use(middlewarectx.MemberAccessMiddleware(logger))

				r.Get("/", memberread.New(logger, svc.Member).ServeHTTP)
				r.Post("/verify-status", memberverify.New(logger, svc.Membership).ServeHTTP)
				r.Post("/status", memberstatus.New(logger, svc.Member).ServeHTTP)
				r.Post("/credentials", membercredentials.New(logger, svc.Credentials).ServeHTTP)
				r.Get("/payments", paymentlist.New(logger, svc.Payment).ServeHTTP)
			})

			r.Post("/payments", paymentcreate.New(logger, svc.Payment).ServeHTTP)

			r.Post("/trainers", trainerregister.New(logger, svc.Trainer).ServeHTTP)
			r.Post("/trainers/{id}/credentials", trainercredentials.New(logger, svc.Credentials).ServeHTTP)

			r.Get("/config", sysconfigget.New(logger, svc.SysConfig).ServeHTTP)
			r.Put("/config", sysconfigupdate.New(logger, svc.SysConfig).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
