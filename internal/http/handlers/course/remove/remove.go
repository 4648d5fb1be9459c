// Package remove реализует HTTP-обработчик удаления курса.
//
// Удалять курс может только его владелец, модераторам удаление запрещено.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mlazareva/education-platform/internal/access"
	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы удаления курса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления курса.
type Service interface {
	Get(ctx context.Context, id int64) (*models.Course, error)
	Remove(ctx context.Context, id int64) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить курс
// @Description Удаляет курс вместе с его уроками, доступно только владельцу
// @Tags Courses
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID курса"
// @Success 200 {object} map[string]any "Курс удален"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /courses/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.remove"

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

	course, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("course not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("course not found"))
			return
		}
		log.Error("failed to read course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete course"))
		return
	}

	principal := middlewarectx.Principal(r.Context())
	if !access.Check(access.MaterialsRules(access.ActionDestroy), principal, access.ActionDestroy, course.OwnerID) {
		log.Error("permission denied", slog.Int64("id", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("permission denied"))
		return
	}

	deleted, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to delete course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete course"))
		return
	}

	log.Info("success to delete course", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": deleted,
	}))
}
