// Package refresh реализует HTTP-обработчик обновления пары токенов
// по refresh токену.
package refresh

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/jwt"
	"github.com/mlazareva/education-platform/internal/lib/sl"
)

// Request — входные данные для обновления токенов
type Request struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Handler обрабатывает HTTP-запросы обновления токенов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления токенов.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление пары токенов
// @Description Принимает refresh токен и возвращает новую пару access/refresh токенов
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Refresh токен"
// @Success 200 {object} map[string]any "Новая пара токенов"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Невалидный refresh токен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Router /refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		log.Error("failed to refresh tokens", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid or expired refresh token"))
		return
	}

	log.Info("tokens refreshed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}))
}
