package subscription

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// fakeRepo хранит подписки в памяти, повторяя отсутствие ограничения
// уникальности в схеме.
type fakeRepo struct {
	courses map[int64]*models.Course
	rows    []models.Subscription
	nextID  int64
}

func newFakeRepo(courseIDs ...int64) *fakeRepo {
	r := &fakeRepo{courses: make(map[int64]*models.Course), nextID: 1}
	for _, id := range courseIDs {
		r.courses[id] = &models.Course{ID: id, Name: "course", Description: "desc"}
	}
	return r
}

func (r *fakeRepo) SubscriptionExists(_ context.Context, userID, courseID int64) (bool, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateSubscription(_ context.Context, userID, courseID int64) (int64, error) {
	id := r.nextID
	r.nextID++
	r.rows = append(r.rows, models.Subscription{ID: id, UserID: userID, CourseID: courseID})
	return id, nil
}

func (r *fakeRepo) RemoveSubscription(_ context.Context, userID, courseID int64) (int, error) {
	var kept []models.Subscription
	removed := 0
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return removed, nil
}

func (r *fakeRepo) ReadCourse(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return course, nil
}

func newTestService(repo SubscriptionRepository) *SubscriptionService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSubscriptionService(repo, logger)
}

func TestToggle(t *testing.T) {
	repo := newFakeRepo(10)
	svc := newTestService(repo)

	added, err := svc.Toggle(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Len(t, repo.rows, 1)

	added, err = svc.Toggle(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, repo.rows)
}

// Чётное число переключений возвращает исходное состояние.
func TestToggle_EvenNumberRestoresState(t *testing.T) {
	repo := newFakeRepo(10)
	svc := newTestService(repo)

	for i := 0; i < 4; i++ {
		_, err := svc.Toggle(context.Background(), 1, 10)
		require.NoError(t, err)
	}
	assert.Empty(t, repo.rows)

	// нечётное число — подписка активна
	_, err := svc.Toggle(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, repo.rows, 1)
}

func TestToggle_IndependentPairs(t *testing.T) {
	repo := newFakeRepo(10, 20)
	svc := newTestService(repo)

	_, err := svc.Toggle(context.Background(), 1, 10)
	require.NoError(t, err)
	_, err = svc.Toggle(context.Background(), 2, 10)
	require.NoError(t, err)
	_, err = svc.Toggle(context.Background(), 1, 20)
	require.NoError(t, err)

	assert.Len(t, repo.rows, 3)

	_, err = svc.Toggle(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, repo.rows, 2)
}

func TestToggle_UnknownCourse(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Toggle(context.Background(), 1, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
