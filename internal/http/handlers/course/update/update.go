// Package update реализует HTTP-обработчик обновления курса.
//
// Обновлять курс может его владелец или модератор.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mlazareva/education-platform/internal/access"
	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/lib/videolink"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы обновления курса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления курса.
type Service interface {
	Get(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, id int64, req models.DummyCourse) (int, error)
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
// @Summary Обновить курс
// @Description Обновляет данные курса, доступно владельцу или модератору
// @Tags Courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID курса"
// @Param request body models.DummyCourse true "Новые данные курса"
// @Success 200 {object} map[string]any "Курс обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /courses/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.update"

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
		render.JSON(w, r, response.Error("failed to update course"))
		return
	}

	principal := middlewarectx.Principal(r.Context())
	if !access.Check(access.MaterialsRules(access.ActionUpdate), principal, access.ActionUpdate, course.OwnerID) {
		log.Error("permission denied", slog.Int64("id", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("permission denied"))
		return
	}

	var req models.DummyCourse
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

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, videolink.ErrForbiddenLink) {
			log.Error("forbidden link in description", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("description contains a forbidden link"))
			return
		}
		log.Error("failed to update course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update course"))
		return
	}

	log.Info("success to update course", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": updated,
	}))
}
