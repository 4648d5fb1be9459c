package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlazareva/education-platform/internal/models"
)

// CreateCourse вставляет новый курс и возвращает его ID.
func (s *Storage) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	const op = "repository.CreateCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO courses (name, description, image, owner_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		course.Name, course.Description, course.Image, course.OwnerID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadCourse возвращает курс по его ID.
func (s *Storage) ReadCourse(ctx context.Context, id int64) (*models.Course, error) {
	const op = "repository.ReadCourse"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, image, owner_id
			  FROM courses WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Course
	var image sql.NullString
	var ownerID sql.NullInt64
	if err := row.Scan(&result.ID, &result.Name, &result.Description, &image, &ownerID); err != nil {
		return nil, wrapError(op, err)
	}
	if image.Valid {
		result.Image = &image.String
	}
	if ownerID.Valid {
		result.OwnerID = &ownerID.Int64
	}
	return &result, nil
}

// ListCourses возвращает список курсов с пагинацией, упорядоченный по ID.
func (s *Storage) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	const op = "repository.ListCourses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, image, owner_id
			  FROM courses
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Course
	for rows.Next() {
		var item models.Course
		var image sql.NullString
		var ownerID sql.NullInt64
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &image, &ownerID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if image.Valid {
			item.Image = &image.String
		}
		if ownerID.Valid {
			item.OwnerID = &ownerID.Int64
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCourse обновляет данные курса по ID и возвращает количество изменённых строк.
func (s *Storage) UpdateCourse(ctx context.Context, id int64, req models.DummyCourse) (int, error) {
	const op = "repository.UpdateCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE courses
			  SET name = $1, description = $2, image = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, req.Name, req.Description, req.Image, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveCourse удаляет курс по ID и возвращает количество удалённых строк.
// Уроки и подписки курса удаляются каскадно, ссылки из платежей обнуляются.
func (s *Storage) RemoveCourse(ctx context.Context, id int64) (int, error) {
	const op = "repository.RemoveCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM courses WHERE id = $1`
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

// CountLessons возвращает количество уроков в курсе.
func (s *Storage) CountLessons(ctx context.Context, courseID int64) (int, error) {
	const op = "repository.CountLessons"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM lessons WHERE course_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
