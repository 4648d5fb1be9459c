// Package course содержит бизнес-логику для управления курсами
// и кеширования их детальных представлений.
package course

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mlazareva/education-platform/internal/lib/videolink"
	"github.com/mlazareva/education-platform/internal/models"
)

// CourseRepository определяет методы для работы с курсами в хранилище.
type CourseRepository interface {
	// CreateCourse добавляет новый курс и возвращает его ID.
	CreateCourse(ctx context.Context, course models.Course) (int64, error)
	// ReadCourse возвращает курс по ID.
	ReadCourse(ctx context.Context, id int64) (*models.Course, error)
	// ListCourses возвращает список курсов с пагинацией.
	ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error)
	// UpdateCourse обновляет данные курса по ID.
	UpdateCourse(ctx context.Context, id int64, req models.DummyCourse) (int, error)
	// RemoveCourse удаляет курс по ID.
	RemoveCourse(ctx context.Context, id int64) (int, error)
	// CountLessons возвращает количество уроков в курсе.
	CountLessons(ctx context.Context, courseID int64) (int, error)
	// ListLessonsByCourse возвращает все уроки курса.
	ListLessonsByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error)
	// SubscriptionExists сообщает, подписан ли пользователь на курс.
	SubscriptionExists(ctx context.Context, userID, courseID int64) (bool, error)
	// ListSubscribedCourseIDs возвращает курсы, на которые подписан пользователь.
	ListSubscribedCourseIDs(ctx context.Context, userID int64) (map[int64]bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// CourseService реализует бизнес-логику работы с курсами.
type CourseService struct {
	repo  CourseRepository
	cache Cache
	log   *slog.Logger
}

// NewCourseService создает новый экземпляр CourseService.
func NewCourseService(repo CourseRepository, cache Cache, log *slog.Logger) *CourseService {
	return &CourseService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// DetailCacheKey ключ кеша детального представления курса.
func DetailCacheKey(id int64) string {
	return fmt.Sprintf("course:%d", id)
}

// Create проверяет описание курса и сохраняет его с владельцем
// из контекста аутентификации.
func (s *CourseService) Create(ctx context.Context, ownerID int64, req models.DummyCourse) (int64, error) {
	if err := videolink.Check(req.Description); err != nil {
		return 0, err
	}

	entry := models.Course{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		OwnerID:     &ownerID,
	}
	id, err := s.repo.CreateCourse(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new course", slog.Int64("id", id), slog.Int64("owner_id", ownerID))
	return id, nil
}

// Get возвращает курс по ID без производных полей. Используется
// обработчиками для проверки владельца.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.repo.ReadCourse(ctx, id)
}

// Read возвращает детальное представление курса со встроенными уроками,
// используя кеш или репозиторий.
func (s *CourseService) Read(ctx context.Context, id int64) (*models.CourseDetail, error) {
	var cached *models.CourseDetail
	cacheKey := DetailCacheKey(id)
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read course from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	course, err := s.repo.ReadCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	lessons, err := s.repo.ListLessonsByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []*models.Lesson{}
	}

	detail := &models.CourseDetail{
		ID:           course.ID,
		Name:         course.Name,
		Description:  course.Description,
		LessonsCount: len(lessons),
		Lessons:      lessons,
	}

	if err := s.cache.Set(cacheKey, detail, time.Hour); err != nil {
		s.log.Warn("failed to cache course", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return detail, nil
}

// List возвращает список курсов с производными полями: количеством уроков
// и признаком подписки запрашивающего пользователя. Для анонимного
// запроса (userID == 0) признак подписки всегда false.
func (s *CourseService) List(ctx context.Context, userID int64, limit, offset int) ([]*models.CourseListItem, error) {
	courses, err := s.repo.ListCourses(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	subscribed := map[int64]bool{}
	if userID != 0 {
		subscribed, err = s.repo.ListSubscribedCourseIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	result := make([]*models.CourseListItem, 0, len(courses))
	for _, c := range courses {
		count, err := s.repo.CountLessons(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &models.CourseListItem{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			LessonsCount: count,
			IsSubscribed: subscribed[c.ID],
		})
	}
	return result, nil
}

// Update проверяет описание, обновляет курс и инвалидирует кеш.
func (s *CourseService) Update(ctx context.Context, id int64, req models.DummyCourse) (int, error) {
	if err := videolink.Check(req.Description); err != nil {
		return 0, err
	}

	count, err := s.repo.UpdateCourse(ctx, id, req)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Invalidate(DetailCacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.Int64("id", id), slog.Any("err", err))
	}
	return count, nil
}

// Remove удаляет курс и инвалидирует кеш. Уроки и подписки курса
// удаляются каскадно, ссылки из платежей обнуляются.
func (s *CourseService) Remove(ctx context.Context, id int64) (int, error) {
	if err := s.cache.Invalidate(DetailCacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.Int64("id", id), slog.Any("err", err))
	}
	return s.repo.RemoveCourse(ctx, id)
}
