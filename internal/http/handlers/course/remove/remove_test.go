package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mlazareva/education-platform/internal/access"
	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockService) Remove(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func courseOwnedBy(ownerID int64) *models.Course {
	return &models.Course{
		ID:          10,
		Name:        "Основы Go",
		Description: "описание",
		OwnerID:     &ownerID,
	}
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		courseID       string
		principal      *access.Principal
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "владелец удаляет свой курс",
			courseID:  "10",
			principal: &access.Principal{UserID: 7, Username: "testuser"},
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(10)).Return(courseOwnedBy(7), nil)
				m.On("Remove", mock.Anything, int64(10)).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"deleted_count":1}}`,
		},
		{
			name:      "чужой курс удалить нельзя",
			courseID:  "10",
			principal: &access.Principal{UserID: 99, Username: "stranger"},
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(10)).Return(courseOwnedBy(7), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"permission denied"}`,
		},
		{
			name:      "модератору удаление запрещено даже для чужого курса",
			courseID:  "10",
			principal: &access.Principal{UserID: 8, Username: "moder", IsModerator: true},
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(10)).Return(courseOwnedBy(7), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"permission denied"}`,
		},
		{
			name:      "курс не найден",
			courseID:  "404",
			principal: &access.Principal{UserID: 7, Username: "testuser"},
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"course not found"}`,
		},
		{
			name:           "некорректный ID",
			courseID:       "abc",
			principal:      &access.Principal{UserID: 7, Username: "testuser"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/courses/"+tt.courseID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.courseID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
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
