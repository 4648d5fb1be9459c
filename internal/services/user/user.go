// Package user содержит бизнес-логику работы с пользователями,
// включая фабрику учётных записей.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mlazareva/education-platform/internal/lib/password"
	"github.com/mlazareva/education-platform/internal/models"
)

// Ошибки фабрики учётных записей.
var (
	// ErrEmailRequired возвращается при попытке создать пользователя без email.
	ErrEmailRequired = errors.New("the email must be set")
	// ErrSuperuserNotStaff возвращается, если суперпользователь создаётся без флага staff.
	ErrSuperuserNotStaff = errors.New("superuser must have is_staff=true")
	// ErrSuperuserFlag возвращается, если суперпользователь создаётся без флага superuser.
	ErrSuperuserFlag = errors.New("superuser must have is_superuser=true")
)

// NewUser фабрика обычного пользователя: проверяет наличие email
// и хэширует пароль.
func NewUser(email, username, rawPassword string) (*models.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		IsActive:     true,
	}, nil
}

// NewSuperuser фабрика суперпользователя: помимо проверок обычной фабрики
// требует согласованности флагов staff и superuser, чтобы суперпользователь
// не мог быть создан без нужных прав.
func NewSuperuser(email, username, rawPassword string, isStaff, isSuperuser bool) (*models.User, error) {
	if !isStaff {
		return nil, ErrSuperuserNotStaff
	}
	if !isSuperuser {
		return nil, ErrSuperuserFlag
	}
	u, err := NewUser(email, username, rawPassword)
	if err != nil {
		return nil, err
	}
	u.IsStaff = true
	u.IsSuperuser = true
	return u, nil
}

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.DummyUserUpdate) (int, error)
	RemoveUser(ctx context.Context, id int64) (int, error)
	ListPaymentsByUser(ctx context.Context, userID int64) ([]*models.Payment, error)
}

// UserService реализует операции над профилями пользователей.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// List возвращает ограниченные представления пользователей с пагинацией.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*models.UserListItem, error) {
	users, err := s.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*models.UserListItem, 0, len(users))
	for _, u := range users {
		result = append(result, &models.UserListItem{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return result, nil
}

// Get возвращает пользователя по ID.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

// GetDetail возвращает полный профиль пользователя со встроенными платежами.
// Доступен только владельцу профиля.
func (s *UserService) GetDetail(ctx context.Context, id int64) (*models.UserDetail, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPaymentsByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return &models.UserDetail{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		City:       u.City,
		Avatar:     u.Avatar,
		IsStaff:    u.IsStaff,
		IsActive:   u.IsActive,
		DateJoined: u.DateJoined,
		Payments:   payments,
	}, nil
}

// Update обновляет профиль и возвращает количество изменённых строк.
func (s *UserService) Update(ctx context.Context, id int64, req models.DummyUserUpdate) (int, error) {
	count, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	s.log.Info("user profile updated", slog.Int64("id", id))
	return count, nil
}

// Remove удаляет пользователя. Курсы, уроки, платежи и подписки
// пользователя удаляются каскадно на уровне базы данных.
func (s *UserService) Remove(ctx context.Context, id int64) (int, error) {
	count, err := s.repo.RemoveUser(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("user removed", slog.Int64("id", id))
	return count, nil
}
