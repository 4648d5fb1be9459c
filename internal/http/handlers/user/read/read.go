// Package read реализует HTTP-обработчик чтения профиля пользователя.
//
// Владелец профиля получает полное представление со списком платежей,
// остальные пользователи видят ограниченный набор полей.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы чтения профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetDetail(ctx context.Context, id int64) (*models.UserDetail, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль пользователя
// @Description Возвращает профиль: полный для владельца, ограниченный для остальных
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	principal := middlewarectx.Principal(r.Context())
	if principal != nil && principal.UserID == id {
		detail, err := h.service.GetDetail(r.Context(), id)
		if err != nil {
			h.renderReadError(w, r, log, id, err)
			return
		}
		log.Info("success to read own profile", slog.Int64("id", id))
		render.JSON(w, r, response.StatusOKWithData(detail))
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.renderReadError(w, r, log, id, err)
		return
	}

	log.Info("success to read profile", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(models.UserListItem{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}))
}

func (h *Handler) renderReadError(w http.ResponseWriter, r *http.Request, log *slog.Logger, id int64, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		log.Error("user not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	log.Error("failed to read user", sl.Err(err))
	w.WriteHeader(http.StatusInternalServerError)
	render.JSON(w, r, response.Error("failed to read user"))
}
