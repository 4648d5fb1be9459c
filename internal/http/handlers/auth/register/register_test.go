package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, username, password string) (int64, error) {
	args := m.Called(ctx, email, username, password)
	return args.Get(0).(int64), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			requestBody: Request{
				Email:    "user@example.com",
				Username: "testuser",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "user@example.com", "testuser", "password123").
					Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","data":{"id":1,"username":"testuser","email":"user@example.com"}}`,
		},
		{
			name: "email уже занят",
			requestBody: Request{
				Email:    "user@example.com",
				Username: "testuser",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "user@example.com", "testuser", "password123").
					Return(int64(0), repository.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"email or username already taken"}`,
		},
		{
			name: "невалидный email",
			requestBody: Request{
				Email:    "not-an-email",
				Username: "testuser",
				Password: "password123",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Email must be a valid email"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: Request{
				Email:    "user@example.com",
				Username: "testuser",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "user@example.com", "testuser", "password123").
					Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader(body))
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
