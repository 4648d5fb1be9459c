// Package educationplatform собирает HTTP-приложение платформы:
// хранилище, кеш, брокер сообщений, внешние клиенты и маршруты.
package educationplatform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/mlazareva/education-platform/internal/cache"
	"github.com/mlazareva/education-platform/internal/config"
	"github.com/mlazareva/education-platform/internal/currencyrates"
	"github.com/mlazareva/education-platform/internal/lib/jwt"
	"github.com/mlazareva/education-platform/internal/lib/rabbitmq"
	"github.com/mlazareva/education-platform/internal/migrations"
	"github.com/mlazareva/education-platform/internal/paymentprovider"
	authservice "github.com/mlazareva/education-platform/internal/services/auth"
	courseservice "github.com/mlazareva/education-platform/internal/services/course"
	lessonservice "github.com/mlazareva/education-platform/internal/services/lesson"
	paymentservice "github.com/mlazareva/education-platform/internal/services/payment"
	subscriptionservice "github.com/mlazareva/education-platform/internal/services/subscription"
	userservice "github.com/mlazareva/education-platform/internal/services/user"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// Параметры подключения к брокеру сообщений.
const (
	rabbitConnectAttempts = 5
	rabbitConnectDelay    = 3 * time.Second
)

// App HTTP-приложение платформы.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	rabbit *amqp.Connection
}

// New создает приложение: подключает хранилище, применяет миграции,
// инициализирует кеш, брокер и внешние клиенты, регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.URLRabbit, rabbitConnectAttempts, rabbitConnectDelay)
	if err != nil {
		return nil, err
	}
	queues := rabbitmq.GetPaymentQueues()
	rabbitCh, err := rabbitmq.SetupChannel(rabbitConn, queues)
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(rabbitCh, rabbitmq.Exchange, queues[0].RoutingKey)

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.AccessTTL, cfg.RefreshTTL)
	providerClient := paymentprovider.NewClient(cfg.Stripe.APIKey)
	ratesClient := currencyrates.NewClient(cfg.AddressCurrency)

	authService := authservice.NewAuthService(db, jwtMaker)
	userService := userservice.NewUserService(db, logger)
	courseService := courseservice.NewCourseService(db, cacheRedis, logger)
	lessonService := lessonservice.NewLessonService(db, cacheRedis, logger)
	subscriptionService := subscriptionservice.NewSubscriptionService(db, logger)
	paymentService := paymentservice.NewPaymentService(db, ratesClient, providerClient, publisher,
		paymentservice.CheckoutURLs{
			SuccessURL: cfg.Stripe.SuccessURL,
			CancelURL:  cfg.Stripe.CancelURL,
		}, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, jwtMaker, &Services{
		Auth:         authService,
		User:         userService,
		Course:       courseService,
		Lesson:       lessonService,
		Subscription: subscriptionService,
		Payment:      paymentService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		rabbit: rabbitConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.rabbit.Close()
		_ = a.db.DB.Close()
		return err
	}
}
