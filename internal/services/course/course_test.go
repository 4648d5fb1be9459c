package course

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/lib/videolink"
	"github.com/mlazareva/education-platform/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) ReadCourse(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *mockRepo) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *mockRepo) UpdateCourse(ctx context.Context, id int64, req models.DummyCourse) (int, error) {
	args := m.Called(ctx, id, req)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) RemoveCourse(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) CountLessons(ctx context.Context, courseID int64) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) ListLessonsByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lesson), args.Error(1)
}

func (m *mockRepo) SubscriptionExists(ctx context.Context, userID, courseID int64) (bool, error) {
	args := m.Called(ctx, userID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListSubscribedCourseIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestCreate(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	ownerID := int64(5)
	repo.On("CreateCourse", mock.Anything, mock.MatchedBy(func(c models.Course) bool {
		return c.Name == "Go с нуля" && c.OwnerID != nil && *c.OwnerID == ownerID
	})).Return(int64(10), nil)

	id, err := service.Create(context.Background(), ownerID, models.DummyCourse{
		Name:        "Go с нуля",
		Description: "https://youtube.com/watch?v=abc вводное видео курса",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	repo.AssertExpectations(t)
}

func TestCreate_ForbiddenLink(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	_, err := service.Create(context.Background(), 5, models.DummyCourse{
		Name:        "Курс",
		Description: "Материалы лежат на https://example.com/files",
	})
	require.ErrorIs(t, err, videolink.ErrForbiddenLink)
	repo.AssertNotCalled(t, "CreateCourse", mock.Anything, mock.Anything)
}

func TestRead_CacheMissThenSet(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	courseID := int64(3)
	cache.On("Get", DetailCacheKey(courseID), mock.Anything).Return(false, nil)
	repo.On("ReadCourse", mock.Anything, courseID).Return(&models.Course{
		ID:          courseID,
		Name:        "Алгоритмы",
		Description: "Описание",
	}, nil)
	repo.On("ListLessonsByCourse", mock.Anything, courseID).Return([]*models.Lesson{
		{ID: 1, Name: "Введение", CourseID: courseID},
		{ID: 2, Name: "Сложность", CourseID: courseID},
	}, nil)
	cache.On("Set", DetailCacheKey(courseID), mock.Anything, time.Hour).Return(nil)

	detail, err := service.Read(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, "Алгоритмы", detail.Name)
	assert.Equal(t, 2, detail.LessonsCount)
	assert.Len(t, detail.Lessons, 2)
	cache.AssertExpectations(t)
}

func TestRead_CacheHitSkipsRepository(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	courseID := int64(3)
	cache.On("Get", DetailCacheKey(courseID), mock.Anything).Run(func(args mock.Arguments) {
		out := args.Get(1).(**models.CourseDetail)
		*out = &models.CourseDetail{ID: courseID, Name: "Алгоритмы", Lessons: []*models.Lesson{}}
	}).Return(true, nil)

	detail, err := service.Read(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, "Алгоритмы", detail.Name)
	repo.AssertNotCalled(t, "ReadCourse", mock.Anything, mock.Anything)
}

func TestList_DerivedFields(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	userID := int64(7)
	repo.On("ListCourses", mock.Anything, 20, 0).Return([]*models.Course{
		{ID: 1, Name: "Первый"},
		{ID: 2, Name: "Второй"},
	}, nil)
	repo.On("ListSubscribedCourseIDs", mock.Anything, userID).Return(map[int64]bool{2: true}, nil)
	repo.On("CountLessons", mock.Anything, int64(1)).Return(3, nil)
	repo.On("CountLessons", mock.Anything, int64(2)).Return(0, nil)

	got, err := service.List(context.Background(), userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].LessonsCount)
	assert.False(t, got[0].IsSubscribed)
	assert.True(t, got[1].IsSubscribed)
}

func TestList_AnonymousHasNoSubscriptions(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	repo.On("ListCourses", mock.Anything, 20, 0).Return([]*models.Course{{ID: 1}}, nil)
	repo.On("CountLessons", mock.Anything, int64(1)).Return(0, nil)

	got, err := service.List(context.Background(), 0, 20, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsSubscribed)
	repo.AssertNotCalled(t, "ListSubscribedCourseIDs", mock.Anything, mock.Anything)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	repo := new(mockRepo)
	cache := new(mockCache)
	service := NewCourseService(repo, cache, discardLogger())

	courseID := int64(4)
	req := models.DummyCourse{Name: "Новое имя", Description: "Описание"}
	repo.On("UpdateCourse", mock.Anything, courseID, req).Return(1, nil)
	cache.On("Invalidate", DetailCacheKey(courseID)).Return(nil)

	count, err := service.Update(context.Background(), courseID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	cache.AssertExpectations(t)
}
