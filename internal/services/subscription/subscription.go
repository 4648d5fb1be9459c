// Package subscription содержит бизнес-логику переключения подписок
// пользователей на курсы.
package subscription

import (
	"context"
	"log/slog"

	"github.com/mlazareva/education-platform/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// SubscriptionExists сообщает, подписан ли пользователь на курс.
	SubscriptionExists(ctx context.Context, userID, courseID int64) (bool, error)
	// CreateSubscription добавляет запись подписки.
	CreateSubscription(ctx context.Context, userID, courseID int64) (int64, error)
	// RemoveSubscription удаляет записи подписки пары пользователь-курс.
	RemoveSubscription(ctx context.Context, userID, courseID int64) (int, error)
	// ReadCourse возвращает курс по ID.
	ReadCourse(ctx context.Context, id int64) (*models.Course, error)
}

// SubscriptionService реализует переключение подписки.
type SubscriptionService struct {
	repo SubscriptionRepository
	log  *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		log:  log,
	}
}

// Toggle переключает подписку пользователя на курс: если запись
// существует — удаляет её, иначе создаёт. Возвращает true, если
// подписка была добавлена. Последовательность чтение-запись не
// изолирована транзакцией: конкурирующие одинаковые запросы могут
// создать дубликат записи.
func (s *SubscriptionService) Toggle(ctx context.Context, userID, courseID int64) (bool, error) {
	course, err := s.repo.ReadCourse(ctx, courseID)
	if err != nil {
		return false, err
	}

	exists, err := s.repo.SubscriptionExists(ctx, userID, course.ID)
	if err != nil {
		return false, err
	}

	if exists {
		if _, err := s.repo.RemoveSubscription(ctx, userID, course.ID); err != nil {
			return false, err
		}
		s.log.Info("subscription removed",
			slog.Int64("user_id", userID), slog.Int64("course_id", course.ID))
		return false, nil
	}

	if _, err := s.repo.CreateSubscription(ctx, userID, course.ID); err != nil {
		return false, err
	}
	s.log.Info("subscription added",
		slog.Int64("user_id", userID), slog.Int64("course_id", course.ID))
	return true, nil
}
