// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха добавляет в контекст принципала (идентификатор, имя
// пользователя и признак модератора) для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mlazareva/education-platform/internal/access"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/jwt"
	"github.com/mlazareva/education-platform/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// PrincipalKey — ключ для принципала в контексте.
const PrincipalKey Key = "principal"

// TokenParser описывает интерфейс разбора JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// Principal извлекает принципала из контекста запроса.
// Возвращает nil для анонимного запроса.
func Principal(ctx context.Context) *access.Principal {
	p, ok := ctx.Value(PrincipalKey).(*access.Principal)
	if !ok {
		return nil
	}
	return p
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Принимаются только access токены: refresh токен, предъявленный как
// авторизационный, отклоняется. Если токен валиден, принципал добавляется
// в контекст запроса, иначе возвращается HTTP 401 Unauthorized.
func JWTMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			if claims.TokenType != jwt.TokenTypeAccess {
				log.Error("refresh token used as access token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			principal := &access.Principal{
				UserID:      claims.UserID,
				Username:    claims.Username,
				IsModerator: claims.IsModerator,
			}
			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
