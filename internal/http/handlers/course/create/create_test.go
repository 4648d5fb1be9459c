package create

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

	"github.com/mlazareva/education-platform/internal/access"
	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/lib/videolink"
	"github.com/mlazareva/education-platform/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, ownerID int64, req models.DummyCourse) (int64, error) {
	args := m.Called(ctx, ownerID, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		principal      *access.Principal
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание курса",
			requestBody: models.DummyCourse{
				Name:        "Основы Go",
				Description: "Видео: https://www.youtube.com/watch?v=abc",
			},
			principal: &access.Principal{UserID: 7, Username: "testuser"},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(7), mock.AnythingOfType("models.DummyCourse")).
					Return(int64(123), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","data":{"id":123}}`,
		},
		{
			name: "модератору запрещено создавать курсы",
			requestBody: models.DummyCourse{
				Name:        "Основы Go",
				Description: "описание",
			},
			principal:      &access.Principal{UserID: 8, Username: "moder", IsModerator: true},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"permission denied"}`,
		},
		{
			name: "анонимный запрос",
			requestBody: models.DummyCourse{
				Name:        "Основы Go",
				Description: "описание",
			},
			principal:      nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"permission denied"}`,
		},
		{
			name:           "невалидные данные",
			requestBody:    models.DummyCourse{Name: "", Description: ""},
			principal:      &access.Principal{UserID: 7, Username: "testuser"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Name is a required field, field Description is a required field"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			principal:      &access.Principal{UserID: 7, Username: "testuser"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "запрещенная ссылка в описании",
			requestBody: models.DummyCourse{
				Name:        "Основы Go",
				Description: "Видео: https://vimeo.com/123",
			},
			principal: &access.Principal{UserID: 7, Username: "testuser"},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(7), mock.AnythingOfType("models.DummyCourse")).
					Return(int64(0), videolink.ErrForbiddenLink)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"description contains a forbidden link"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: models.DummyCourse{
				Name:        "Основы Go",
				Description: "описание",
			},
			principal: &access.Principal{UserID: 7, Username: "testuser"},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(7), mock.AnythingOfType("models.DummyCourse")).
					Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create course"}`,
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

			req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := req.Context()
			if tt.principal != nil {
				ctx = context.WithValue(ctx, middlewarectx.PrincipalKey, tt.principal)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
