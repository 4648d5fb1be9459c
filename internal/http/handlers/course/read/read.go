// Package read реализует HTTP-обработчик детального представления курса
// со встроенным списком уроков.
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

	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы чтения курса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения курса.
type Service interface {
	Read(ctx context.Context, id int64) (*models.CourseDetail, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Детальное представление курса
// @Description Возвращает курс со встроенным списком его уроков
// @Tags Courses
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID курса"
// @Success 200 {object} map[string]any "Курс с уроками"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /courses/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.read"

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

	detail, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("course not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("course not found"))
			return
		}
		log.Error("failed to read course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read course"))
		return
	}

	log.Info("success to read course", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(detail))
}
