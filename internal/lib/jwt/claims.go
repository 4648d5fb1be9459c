// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки пары токенов
// (короткоживущий access и долгоживущий refresh) для пользователя.
// MakerImpl — конкретная реализация с секретным ключом и сроками жизни токенов.
package jwt

import (
	"time"
)

// Типы токенов, хранящиеся в claim token_type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair пара токенов, выдаваемая при входе и обновлении.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GeneratePair создает пару access/refresh токенов для пользователя.
	GeneratePair(userID int64, username string, isModerator bool) (*TokenPair, error)
	// ParseToken возвращает *CustomClaims, если токен корректен и не истёк.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и отдельных сроков жизни access и refresh токенов.
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов
	accessTTL  time.Duration // Время жизни access токена
	refreshTTL time.Duration // Время жизни refresh токена
}

// NewMaker создаёт новый экземпляр MakerImpl.
func NewMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
