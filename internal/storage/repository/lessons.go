package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlazareva/education-platform/internal/models"
)

// CreateLesson вставляет новый урок и возвращает его ID.
func (s *Storage) CreateLesson(ctx context.Context, lesson models.Lesson) (int64, error) {
	const op = "repository.CreateLesson"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO lessons (name, description, image, video, course_id, owner_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		lesson.Name, lesson.Description, lesson.Image, lesson.Video,
		lesson.CourseID, lesson.OwnerID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadLesson возвращает урок по его ID.
func (s *Storage) ReadLesson(ctx context.Context, id int64) (*models.Lesson, error) {
	const op = "repository.ReadLesson"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, image, video, course_id, owner_id
			  FROM lessons WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Lesson
	if err := scanLesson(row.Scan, &result); err != nil {
		return nil, wrapError(op, err)
	}
	return &result, nil
}

func scanLesson(scan func(...any) error, item *models.Lesson) error {
	var image, video sql.NullString
	var ownerID sql.NullInt64
	if err := scan(&item.ID, &item.Name, &item.Description, &image, &video,
		&item.CourseID, &ownerID); err != nil {
		return err
	}
	if image.Valid {
		item.Image = &image.String
	}
	if video.Valid {
		item.Video = &video.String
	}
	if ownerID.Valid {
		item.OwnerID = &ownerID.Int64
	}
	return nil
}

// ListLessons возвращает список уроков с пагинацией, упорядоченный по ID.
func (s *Storage) ListLessons(ctx context.Context, limit, offset int) ([]*models.Lesson, error) {
	const op = "repository.ListLessons"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, image, video, course_id, owner_id
			  FROM lessons
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Lesson
	for rows.Next() {
		var item models.Lesson
		if err := scanLesson(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListLessonsByCourse возвращает все уроки курса, упорядоченные по ID.
func (s *Storage) ListLessonsByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	const op = "repository.ListLessonsByCourse"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, image, video, course_id, owner_id
			  FROM lessons
			  WHERE course_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Lesson
	for rows.Next() {
		var item models.Lesson
		if err := scanLesson(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateLesson обновляет данные урока по ID и возвращает количество изменённых строк.
func (s *Storage) UpdateLesson(ctx context.Context, id int64, req models.DummyLesson) (int, error) {
	const op = "repository.UpdateLesson"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE lessons
			  SET name = $1, description = $2, image = $3, video = $4, course_id = $5
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		req.Name, req.Description, req.Image, req.Video, req.CourseID, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveLesson удаляет урок по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveLesson(ctx context.Context, id int64) (int, error) {
	const op = "repository.RemoveLesson"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM lessons WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
