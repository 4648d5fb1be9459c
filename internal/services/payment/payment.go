// Package payment содержит бизнес-логику платежей: список с фильтрацией,
// регистрацию платежа и создание сессии оплаты у внешнего провайдера.
package payment

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/paymentprovider"
)

// Размер страницы списка платежей по умолчанию.
const defaultListLimit = 20

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// CreatePayment вставляет новый платёж и возвращает его ID.
	CreatePayment(ctx context.Context, payment models.Payment) (int64, error)
	// ListPayments возвращает платежи по фильтру.
	ListPayments(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error)
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// RatesConverter конвертирует сумму между валютами по текущему курсу.
type RatesConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

// CheckoutProvider создаёт цены и сессии оплаты у платёжного провайдера.
type CheckoutProvider interface {
	CreatePrice(ctx context.Context, amountCents int64, currency, interval, productName string) (*paymentprovider.Price, error)
	CreateCheckoutSession(ctx context.Context, priceID, successURL, cancelURL string) (*paymentprovider.CheckoutSession, error)
}

// EventPublisher публикует сообщения о платежах в очередь уведомлений.
type EventPublisher interface {
	Publish(message any) error
}

// CheckoutURLs адреса перенаправления после завершения или отмены оплаты.
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}

// CheckoutResult результат создания сессии оплаты.
type CheckoutResult struct {
	SessionID string `json:"session_id"` // Идентификатор сессии у провайдера
	URL       string `json:"url"`        // Адрес страницы оплаты
}

// PaymentService реализует бизнес-логику платежей.
type PaymentService struct {
	repo      PaymentRepository
	rates     RatesConverter
	provider  CheckoutProvider
	publisher EventPublisher
	urls      CheckoutURLs
	log       *slog.Logger
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(repo PaymentRepository, rates RatesConverter,
	provider CheckoutProvider, publisher EventPublisher,
	urls CheckoutURLs, log *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:      repo,
		rates:     rates,
		provider:  provider,
		publisher: publisher,
		urls:      urls,
		log:       log,
	}
}

// List возвращает платежи по фильтру. Пользователь без прав модератора
// видит только собственные платежи.
func (s *PaymentService) List(ctx context.Context, userID int64, isModerator bool, filter models.PaymentFilter) ([]*models.Payment, error) {
	if !isModerator {
		filter.UserID = &userID
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	result, err := s.repo.ListPayments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.Payment{}
	}
	return result, nil
}

// Create регистрирует платёж за курс или урок от имени пользователя.
func (s *PaymentService) Create(ctx context.Context, userID int64, req models.DummyPayment) (int64, error) {
	entry := models.Payment{
		UserID:        userID,
		CourseID:      req.CourseID,
		LessonID:      req.LessonID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
	id, err := s.repo.CreatePayment(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new payment",
		slog.Int64("id", id),
		slog.Int64("user_id", userID),
		slog.String("payment_method", req.PaymentMethod))
	return id, nil
}

// Checkout конвертирует сумму из рублей в доллары, создаёт у провайдера
// повторяющуюся цену и сессию оплаты, публикует событие для сервиса
// уведомлений и возвращает идентификатор сессии с адресом оплаты.
func (s *PaymentService) Checkout(ctx context.Context, userID int64, req models.DummyCheckout) (*CheckoutResult, error) {
	amountUSD, err := s.rates.Convert(ctx, req.Amount, "RUB", "USD")
	if err != nil {
		return nil, err
	}
	amountCents := int64(math.Round(amountUSD * 100))

	price, err := s.provider.CreatePrice(ctx, amountCents, "usd", "month", req.ProductName)
	if err != nil {
		return nil, err
	}

	session, err := s.provider.CreateCheckoutSession(ctx, price.ID, s.urls.SuccessURL, s.urls.CancelURL)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, userID, amountUSD, session.ID)

	s.log.Info("created checkout session",
		slog.Int64("user_id", userID),
		slog.String("session_id", session.ID))
	return &CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

// Сбой публикации не отменяет уже созданную сессию оплаты,
// поэтому ошибка только логируется.
func (s *PaymentService) publishEvent(ctx context.Context, userID int64, amountUSD float64, sessionID string) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load user for payment event", sl.Err(err))
		return
	}

	event := models.PaymentEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Amount:    amountUSD,
		Currency:  "USD",
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(event); err != nil {
		s.log.Warn("failed to publish payment event", sl.Err(err))
	}
}
