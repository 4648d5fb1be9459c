package lesson

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/services/course"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateLesson(ctx context.Context, lesson models.Lesson) (int64, error) {
	args := m.Called(ctx, lesson)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) ReadLesson(ctx context.Context, id int64) (*models.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lesson), args.Error(1)
}

func (m *mockRepo) ListLessons(ctx context.Context, limit, offset int) ([]*models.Lesson, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lesson), args.Error(1)
}

func (m *mockRepo) UpdateLesson(ctx context.Context, id int64, req models.DummyLesson) (int, error) {
	args := m.Called(ctx, id, req)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) RemoveLesson(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) ReadCourse(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestCreate_UnknownCourse(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewLessonService(repo, cache, discardLogger())

	repo.On("ReadCourse", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	_, err := service.Create(context.Background(), 5, models.DummyLesson{
		Name:        "Урок",
		Description: "Описание",
		CourseID:    99,
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertNotCalled(t, "CreateLesson", mock.Anything, mock.Anything)
}

func TestCreate_InvalidatesParentCourse(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewLessonService(repo, cache, discardLogger())

	courseID := int64(3)
	repo.On("ReadCourse", mock.Anything, courseID).Return(&models.Course{ID: courseID}, nil)
	repo.On("CreateLesson", mock.Anything, mock.MatchedBy(func(l models.Lesson) bool {
		return l.CourseID == courseID && l.OwnerID != nil && *l.OwnerID == int64(5)
	})).Return(int64(10), nil)
	cache.On("Invalidate", course.DetailCacheKey(courseID)).Return(nil)

	id, err := service.Create(context.Background(), 5, models.DummyLesson{
		Name:        "Урок",
		Description: "Описание",
		CourseID:    courseID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	cache.AssertExpectations(t)
}

func TestUpdate_MoveBetweenCoursesInvalidatesBoth(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewLessonService(repo, cache, discardLogger())

	lessonID := int64(10)
	req := models.DummyLesson{Name: "Урок", Description: "Описание", CourseID: 2}
	repo.On("ReadLesson", mock.Anything, lessonID).Return(&models.Lesson{ID: lessonID, CourseID: 1}, nil)
	repo.On("UpdateLesson", mock.Anything, lessonID, req).Return(1, nil)
	cache.On("Invalidate", course.DetailCacheKey(int64(1))).Return(nil)
	cache.On("Invalidate", course.DetailCacheKey(int64(2))).Return(nil)

	count, err := service.Update(context.Background(), lessonID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	cache.AssertExpectations(t)
}

func TestRemove_InvalidatesParentCourse(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewLessonService(repo, cache, discardLogger())

	lessonID := int64(10)
	repo.On("ReadLesson", mock.Anything, lessonID).Return(&models.Lesson{ID: lessonID, CourseID: 1}, nil)
	repo.On("RemoveLesson", mock.Anything, lessonID).Return(1, nil)
	cache.On("Invalidate", course.DetailCacheKey(int64(1))).Return(nil)

	count, err := service.Remove(context.Background(), lessonID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	cache.AssertExpectations(t)
}
