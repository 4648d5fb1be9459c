// Package lesson содержит бизнес-логику для управления уроками.
package lesson

import (
	"context"
	"log/slog"

	"github.com/mlazareva/education-platform/internal/lib/videolink"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/services/course"
)

// LessonRepository определяет методы для работы с уроками в хранилище.
type LessonRepository interface {
	// CreateLesson добавляет новый урок и возвращает его ID.
	CreateLesson(ctx context.Context, lesson models.Lesson) (int64, error)
	// ReadLesson возвращает урок по ID.
	ReadLesson(ctx context.Context, id int64) (*models.Lesson, error)
	// ListLessons возвращает список уроков с пагинацией.
	ListLessons(ctx context.Context, limit, offset int) ([]*models.Lesson, error)
	// UpdateLesson обновляет данные урока по ID.
	UpdateLesson(ctx context.Context, id int64, req models.DummyLesson) (int, error)
	// RemoveLesson удаляет урок по ID.
	RemoveLesson(ctx context.Context, id int64) (int, error)
	// ReadCourse возвращает курс по ID, используется для проверки
	// существования родительского курса.
	ReadCourse(ctx context.Context, id int64) (*models.Course, error)
}

// Cache описывает методы для инвалидации кеша курсов.
type Cache interface {
	Invalidate(key string) error
}

// LessonService реализует бизнес-логику работы с уроками.
// Изменение состава уроков инвалидирует кешированное детальное
// представление родительского курса.
type LessonService struct {
	repo  LessonRepository
	cache Cache
	log   *slog.Logger
}

// NewLessonService создает новый экземпляр LessonService.
func NewLessonService(repo LessonRepository, cache Cache, log *slog.Logger) *LessonService {
	return &LessonService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *LessonService) invalidateCourse(courseID int64) {
	if err := s.cache.Invalidate(course.DetailCacheKey(courseID)); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.Int64("course_id", courseID), slog.Any("err", err))
	}
}

// Create проверяет описание урока, существование родительского курса
// и сохраняет урок с владельцем из контекста аутентификации.
func (s *LessonService) Create(ctx context.Context, ownerID int64, req models.DummyLesson) (int64, error) {
	if err := videolink.Check(req.Description); err != nil {
		return 0, err
	}
	if _, err := s.repo.ReadCourse(ctx, req.CourseID); err != nil {
		return 0, err
	}

	entry := models.Lesson{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Video:       req.Video,
		CourseID:    req.CourseID,
		OwnerID:     &ownerID,
	}
	id, err := s.repo.CreateLesson(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new lesson", slog.Int64("id", id), slog.Int64("owner_id", ownerID))
	s.invalidateCourse(req.CourseID)
	return id, nil
}

// Read возвращает урок по ID.
func (s *LessonService) Read(ctx context.Context, id int64) (*models.Lesson, error) {
	return s.repo.ReadLesson(ctx, id)
}

// List возвращает список уроков с пагинацией.
func (s *LessonService) List(ctx context.Context, limit, offset int) ([]*models.Lesson, error) {
	return s.repo.ListLessons(ctx, limit, offset)
}

// Update проверяет описание и обновляет урок.
func (s *LessonService) Update(ctx context.Context, id int64, req models.DummyLesson) (int, error) {
	if err := videolink.Check(req.Description); err != nil {
		return 0, err
	}

	old, err := s.repo.ReadLesson(ctx, id)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.UpdateLesson(ctx, id, req)
	if err != nil {
		return 0, err
	}
	s.invalidateCourse(old.CourseID)
	if req.CourseID != old.CourseID {
		s.invalidateCourse(req.CourseID)
	}
	return count, nil
}

// Remove удаляет урок по ID.
func (s *LessonService) Remove(ctx context.Context, id int64) (int, error) {
	old, err := s.repo.ReadLesson(ctx, id)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.RemoveLesson(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateCourse(old.CourseID)
	return count, nil
}
