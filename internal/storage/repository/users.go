package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlazareva/education-platform/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "repository.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO users (email, username, password_hash, first_name, last_name,
			      phone, city, avatar, is_moderator, is_staff, is_superuser, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.City, user.Avatar, user.IsModerator, user.IsStaff,
		user.IsSuperuser, user.IsActive).Scan(&newID); err != nil {
		return 0, wrapError(op, err)
	}
	return newID, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "repository.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, first_name, last_name,
			      phone, city, avatar, is_moderator, is_staff, is_superuser, is_active, date_joined
			  FROM users
			  WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

// GetUserByEmail возвращает пользователя по email (логину).
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, first_name, last_name,
			      phone, city, avatar, is_moderator, is_staff, is_superuser, is_active, date_joined
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var phone, city, avatar sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FirstName,
		&u.LastName, &phone, &city, &avatar, &u.IsModerator, &u.IsStaff,
		&u.IsSuperuser, &u.IsActive, &u.DateJoined); err != nil {
		return nil, wrapError(op, err)
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if city.Valid {
		u.City = &city.String
	}
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	return u, nil
}

// ListUsers возвращает список пользователей с пагинацией.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "repository.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, first_name, last_name,
			      phone, city, avatar, is_moderator, is_staff, is_superuser, is_active, date_joined
			  FROM users
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u := &models.User{}
		var phone, city, avatar sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.FirstName,
			&u.LastName, &phone, &city, &avatar, &u.IsModerator, &u.IsStaff,
			&u.IsSuperuser, &u.IsActive, &u.DateJoined); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if phone.Valid {
			u.Phone = &phone.String
		}
		if city.Valid {
			u.City = &city.String
		}
		if avatar.Valid {
			u.Avatar = &avatar.String
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUser обновляет данные профиля и возвращает количество изменённых строк.
func (s *Storage) UpdateUser(ctx context.Context, id int64, req models.DummyUserUpdate) (int, error) {
	const op = "repository.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET username = $1, first_name = $2, last_name = $3, phone = $4, city = $5, avatar = $6
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		req.Username, req.FirstName, req.LastName, req.Phone, req.City, req.Avatar, id)
	if err != nil {
		return 0, wrapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveUser удаляет пользователя по ID и возвращает количество удалённых строк.
// Курсы, уроки, платежи и подписки пользователя удаляются каскадно.
func (s *Storage) RemoveUser(ctx context.Context, id int64) (int, error) {
	const op = "repository.RemoveUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE id = $1`
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
