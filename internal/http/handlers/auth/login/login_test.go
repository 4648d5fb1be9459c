package login

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/lib/jwt"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/services/auth"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (*jwt.TokenPair, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*jwt.TokenPair), args.Get(1).(*models.User), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешный вход",
			requestBody: Request{Email: "user@example.com", Password: "password123"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "user@example.com", "password123").
					Return(
						&jwt.TokenPair{AccessToken: "access123", RefreshToken: "refresh123"},
						&models.User{ID: 7, Username: "testuser"},
						nil,
					)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"access_token":"access123","refresh_token":"refresh123","username":"testuser"}}`,
		},
		{
			name:        "неверные учетные данные",
			requestBody: Request{Email: "user@example.com", Password: "wrong"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "user@example.com", "wrong").
					Return(nil, nil, auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid email or password"}`,
		},
		{
			name:           "невалидные данные",
			requestBody:    Request{Email: "", Password: ""},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Email is a required field, field Password is a required field"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			body, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
