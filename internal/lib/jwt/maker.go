package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserID               int64  `json:"user_id"`      // Идентификатор пользователя
	Username             string `json:"username"`     // Имя пользователя
	IsModerator          bool   `json:"is_moderator"` // Принадлежность к группе модераторов
	TokenType            string `json:"token_type"`   // Тип токена: access или refresh
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GeneratePair создает пару access/refresh токенов с общими claims,
// подписывая их секретным ключом.
func (j *MakerImpl) GeneratePair(userID int64, username string, isModerator bool) (*TokenPair, error) {
	const op = "jwt.GeneratePair"

	access, err := j.generate(userID, username, isModerator, TokenTypeAccess, j.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	refresh, err := j.generate(userID, username, isModerator, TokenTypeRefresh, j.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (j *MakerImpl) generate(userID int64, username string, isModerator bool, tokenType string, ttl time.Duration) (string, error) {
	claims := CustomClaims{
		UserID:      userID,
		Username:    username,
		IsModerator: isModerator,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
