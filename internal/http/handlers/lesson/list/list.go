// Package list реализует HTTP-обработчик списка уроков с пагинацией.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
)

// Размер страницы списка по умолчанию.
const defaultLimit = 20

// Handler обрабатывает HTTP-запросы списка уроков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка уроков.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.Lesson, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список уроков
// @Description Возвращает страницу уроков
// @Tags Lessons
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Список уроков"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /lessons [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.lesson.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	result, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list lessons", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list lessons"))
		return
	}

	log.Info("success to list lessons", slog.Int("count", len(result)))
	render.JSON(w, r, response.StatusOKWithData(result))
}
