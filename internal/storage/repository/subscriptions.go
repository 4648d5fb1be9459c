package repository

import (
	"context"
	"fmt"
)

// CreateSubscription вставляет запись подписки и возвращает её ID.
func (s *Storage) CreateSubscription(ctx context.Context, userID, courseID int64) (int64, error) {
	const op = "repository.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_id, course_id)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query, userID, courseID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveSubscription удаляет все записи подписки пары пользователь-курс
// и возвращает количество удалённых строк.
func (s *Storage) RemoveSubscription(ctx context.Context, userID, courseID int64) (int, error) {
	const op = "repository.RemoveSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE user_id = $1 AND course_id = $2`
	result, err := s.DB.ExecContext(ctx, query, userID, courseID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// SubscriptionExists сообщает, подписан ли пользователь на курс.
func (s *Storage) SubscriptionExists(ctx context.Context, userID, courseID int64) (bool, error) {
	const op = "repository.SubscriptionExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE user_id = $1 AND course_id = $2)`
	if err := s.DB.QueryRowContext(ctx, query, userID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListSubscribedCourseIDs возвращает идентификаторы курсов, на которые
// подписан пользователь. Используется при построении списков курсов.
func (s *Storage) ListSubscribedCourseIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	const op = "repository.ListSubscribedCourseIDs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT DISTINCT course_id FROM subscriptions WHERE user_id = $1`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[int64]bool)
	for rows.Next() {
		var courseID int64
		if err := rows.Scan(&courseID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[courseID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
