package payment

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/paymentprovider"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment models.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRatesConverter struct {
	mock.Mock
}

func (m *MockRatesConverter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(float64), args.Error(1)
}

type MockCheckoutProvider struct {
	mock.Mock
}

func (m *MockCheckoutProvider) CreatePrice(ctx context.Context, amountCents int64, currency, interval, productName string) (*paymentprovider.Price, error) {
	args := m.Called(ctx, amountCents, currency, interval, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Price), args.Error(1)
}

func (m *MockCheckoutProvider) CreateCheckoutSession(ctx context.Context, priceID, successURL, cancelURL string) (*paymentprovider.CheckoutSession, error) {
	args := m.Called(ctx, priceID, successURL, cancelURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.CheckoutSession), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(message any) error {
	args := m.Called(message)
	return args.Error(0)
}

func newTestService(repo PaymentRepository, rates RatesConverter,
	provider CheckoutProvider, publisher EventPublisher) *PaymentService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	urls := CheckoutURLs{
		SuccessURL: "https://example.com/success",
		CancelURL:  "https://example.com/cancel",
	}
	return NewPaymentService(repo, rates, provider, publisher, urls, logger)
}

func TestList_ModeratorSeesAll(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("ListPayments", mock.Anything, mock.MatchedBy(func(f models.PaymentFilter) bool {
		return f.UserID == nil && f.Limit == defaultListLimit
	})).Return([]*models.Payment{{ID: 1}, {ID: 2}}, nil)

	svc := newTestService(repo, nil, nil, nil)

	result, err := svc.List(context.Background(), 7, true, models.PaymentFilter{})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	repo.AssertExpectations(t)
}

func TestList_UserSeesOnlyOwn(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("ListPayments", mock.Anything, mock.MatchedBy(func(f models.PaymentFilter) bool {
		return f.UserID != nil && *f.UserID == 7
	})).Return([]*models.Payment{{ID: 1, UserID: 7}}, nil)

	svc := newTestService(repo, nil, nil, nil)

	result, err := svc.List(context.Background(), 7, false, models.PaymentFilter{})
	require.NoError(t, err)
	assert.Len(t, result, 1)
	repo.AssertExpectations(t)
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("ListPayments", mock.Anything, mock.Anything).Return(nil, nil)

	svc := newTestService(repo, nil, nil, nil)

	result, err := svc.List(context.Background(), 7, true, models.PaymentFilter{})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCreate(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
		return p.UserID == 7 && p.Amount == 1500 && p.PaymentMethod == models.PaymentMethodTransfer
	})).Return(int64(42), nil)

	svc := newTestService(repo, nil, nil, nil)

	courseID := int64(3)
	id, err := svc.Create(context.Background(), 7, models.DummyPayment{
		CourseID:      &courseID,
		Amount:        1500,
		PaymentMethod: models.PaymentMethodTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	repo.AssertExpectations(t)
}

func TestCheckout(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("GetUser", mock.Anything, int64(7)).Return(&models.User{
		ID:       7,
		Email:    "user@example.com",
		Username: "testuser",
	}, nil)

	rates := new(MockRatesConverter)
	rates.On("Convert", mock.Anything, 1000.0, "RUB", "USD").Return(12.34, nil)

	provider := new(MockCheckoutProvider)
	provider.On("CreatePrice", mock.Anything, int64(1234), "usd", "month", "Gold Plan").
		Return(&paymentprovider.Price{ID: "price_123", Currency: "usd", UnitAmount: 1234}, nil)
	provider.On("CreateCheckoutSession", mock.Anything, "price_123",
		"https://example.com/success", "https://example.com/cancel").
		Return(&paymentprovider.CheckoutSession{ID: "cs_123", URL: "https://checkout.example.com/cs_123"}, nil)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.MatchedBy(func(message any) bool {
		event, ok := message.(models.PaymentEvent)
		return ok && event.UserID == 7 && event.SessionID == "cs_123" && event.Currency == "USD"
	})).Return(nil)

	svc := newTestService(repo, rates, provider, publisher)

	result, err := svc.Checkout(context.Background(), 7, models.DummyCheckout{
		Amount:      1000,
		ProductName: "Gold Plan",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", result.SessionID)
	assert.Equal(t, "https://checkout.example.com/cs_123", result.URL)
	repo.AssertExpectations(t)
	rates.AssertExpectations(t)
	provider.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckout_ConvertError(t *testing.T) {
	rates := new(MockRatesConverter)
	rates.On("Convert", mock.Anything, 1000.0, "RUB", "USD").
		Return(0.0, errors.New("rates service unavailable"))

	svc := newTestService(new(MockPaymentRepository), rates, new(MockCheckoutProvider), new(MockEventPublisher))

	_, err := svc.Checkout(context.Background(), 7, models.DummyCheckout{
		Amount:      1000,
		ProductName: "Gold Plan",
	})
	assert.Error(t, err)
}

// Ошибка публикации события не отменяет уже созданную сессию оплаты.
func TestCheckout_PublishErrorDoesNotFail(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("GetUser", mock.Anything, int64(7)).Return(&models.User{ID: 7, Email: "user@example.com"}, nil)

	rates := new(MockRatesConverter)
	rates.On("Convert", mock.Anything, mock.Anything, "RUB", "USD").Return(10.0, nil)

	provider := new(MockCheckoutProvider)
	provider.On("CreatePrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&paymentprovider.Price{ID: "price_123"}, nil)
	provider.On("CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&paymentprovider.CheckoutSession{ID: "cs_123", URL: "https://checkout.example.com/cs_123"}, nil)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything).Return(errors.New("broker unavailable"))

	svc := newTestService(repo, rates, provider, publisher)

	result, err := svc.Checkout(context.Background(), 7, models.DummyCheckout{
		Amount:      1000,
		ProductName: "Gold Plan",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", result.SessionID)
}
