// Package educationplatform предоставляет маршруты основного приложения.
package educationplatform

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mlazareva/education-platform/internal/config"
	"github.com/mlazareva/education-platform/internal/http/handlers/auth/login"
	"github.com/mlazareva/education-platform/internal/http/handlers/auth/refresh"
	"github.com/mlazareva/education-platform/internal/http/handlers/auth/register"
	coursecreate "github.com/mlazareva/education-platform/internal/http/handlers/course/create"
	courselist "github.com/mlazareva/education-platform/internal/http/handlers/course/list"
	courseread "github.com/mlazareva/education-platform/internal/http/handlers/course/read"
	courseremove "github.com/mlazareva/education-platform/internal/http/handlers/course/remove"
	courseupdate "github.com/mlazareva/education-platform/internal/http/handlers/course/update"
	"github.com/mlazareva/education-platform/internal/http/handlers/health"
	lessoncreate "github.com/mlazareva/education-platform/internal/http/handlers/lesson/create"
	lessonlist "github.com/mlazareva/education-platform/internal/http/handlers/lesson/list"
	lessonread "github.com/mlazareva/education-platform/internal/http/handlers/lesson/read"
	lessonremove "github.com/mlazareva/education-platform/internal/http/handlers/lesson/remove"
	lessonupdate "github.com/mlazareva/education-platform/internal/http/handlers/lesson/update"
	"github.com/mlazareva/education-platform/internal/http/handlers/media/upload"
	"github.com/mlazareva/education-platform/internal/http/handlers/payment/checkout"
	"github.com/mlazareva/education-platform/internal/http/handlers/payment/paymentcreate"
	"github.com/mlazareva/education-platform/internal/http/handlers/payment/paymentlist"
	"github.com/mlazareva/education-platform/internal/http/handlers/subscription/toggle"
	userlist "github.com/mlazareva/education-platform/internal/http/handlers/user/list"
	userread "github.com/mlazareva/education-platform/internal/http/handlers/user/read"
	userremove "github.com/mlazareva/education-platform/internal/http/handlers/user/remove"
	userupdate "github.com/mlazareva/education-platform/internal/http/handlers/user/update"
	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	authservice "github.com/mlazareva/education-platform/internal/services/auth"
	courseservice "github.com/mlazareva/education-platform/internal/services/course"
	lessonservice "github.com/mlazareva/education-platform/internal/services/lesson"
	paymentservice "github.com/mlazareva/education-platform/internal/services/payment"
	subscriptionservice "github.com/mlazareva/education-platform/internal/services/subscription"
	userservice "github.com/mlazareva/education-platform/internal/services/user"
)

// Services сервисы бизнес-логики, используемые маршрутами.
type Services struct {
	Auth         *authservice.AuthService
	User         *userservice.UserService
	Course       *courseservice.CourseService
	Lesson       *lessonservice.LessonService
	Subscription *subscriptionservice.SubscriptionService
	Payment      *paymentservice.PaymentService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	tokenParser middlewarectx.TokenParser, services *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, services.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, services.Auth).ServeHTTP)
		r.Post("/refresh", refresh.New(logger, services.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(tokenParser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/courses", coursecreate.New(logger, services.Course).ServeHTTP)
			r.Get("/courses", courselist.New(logger, services.Course).ServeHTTP)
			r.Get("/courses/{id}", courseread.New(logger, services.Course).ServeHTTP)
			r.Put("/courses/{id}", courseupdate.New(logger, services.Course).ServeHTTP)
			r.Delete("/courses/{id}", courseremove.New(logger, services.Course).ServeHTTP)

			r.Post("/lessons", lessoncreate.New(logger, services.Lesson).ServeHTTP)
			r.Get("/lessons", lessonlist.New(logger, services.Lesson).ServeHTTP)
			r.Get("/lessons/{id}", lessonread.New(logger, services.Lesson).ServeHTTP)
			r.Put("/lessons/{id}", lessonupdate.New(logger, services.Lesson).ServeHTTP)
			r.Delete("/lessons/{id}", lessonremove.New(logger, services.Lesson).ServeHTTP)

			r.Get("/users", userlist.New(logger, services.User).ServeHTTP)
			r.Get("/users/{id}", userread.New(logger, services.User).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, services.User).ServeHTTP)
			r.Delete("/users/{id}", userremove.New(logger, services.User).ServeHTTP)

			r.Post("/subscriptions/toggle", toggle.New(logger, services.Subscription).ServeHTTP)

			r.Get("/payments", paymentlist.New(logger, services.Payment).ServeHTTP)
			r.Post("/payments", paymentcreate.New(logger, services.Payment).ServeHTTP)
			r.Post("/payments/checkout", checkout.New(logger, services.Payment).ServeHTTP)

			r.Post("/media", upload.New(logger, cfg.MediaDir, cfg.MaxUploadBytes).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
