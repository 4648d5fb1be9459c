// Package list реализует HTTP-обработчик списка курсов с пагинацией.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
)

// Размер страницы списка по умолчанию.
const defaultLimit = 20

// Handler обрабатывает HTTP-запросы списка курсов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка курсов.
type Service interface {
	List(ctx context.Context, userID int64, limit, offset int) ([]*models.CourseListItem, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список курсов
// @Description Возвращает страницу курсов с количеством уроков и признаком подписки
// @Tags Courses
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Список курсов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /courses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.list"

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

	var userID int64
	if principal := middlewarectx.Principal(r.Context()); principal != nil {
		userID = principal.UserID
	}

	result, err := h.service.List(r.Context(), userID, limit, offset)
	if err != nil {
		log.Error("failed to list courses", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list courses"))
		return
	}

	log.Info("success to list courses", slog.Int("count", len(result)))
	render.JSON(w, r, response.StatusOKWithData(result))
}
