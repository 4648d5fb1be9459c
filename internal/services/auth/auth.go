// Package auth содержит логику регистрации, входа и обновления токенов.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlazareva/education-platform/internal/lib/jwt"
	"github.com/mlazareva/education-platform/internal/lib/password"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/services/user"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и обновление JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя через фабрику учётных записей
// и возвращает его ID.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (int64, error) {
	u, err := user.NewUser(email, username, rawPassword)
	if err != nil {
		return 0, err
	}
	return s.users.CreateUser(ctx, *u)
}

// Login проверяет пароль пользователя по email и генерирует пару токенов.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*jwt.TokenPair, *models.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	pair, err := s.jwtMaker.GeneratePair(u.ID, u.Username, u.IsModerator)
	if err != nil {
		return nil, nil, err
	}
	return pair, u, nil
}

// Refresh проверяет refresh токен и выдаёт новую пару токенов.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (*jwt.TokenPair, error) {
	const op = "auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, fmt.Errorf("%s: not a refresh token", op)
	}
	return s.jwtMaker.GeneratePair(claims.UserID, claims.Username, claims.IsModerator)
}
