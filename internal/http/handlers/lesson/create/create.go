// Package create реализует HTTP-обработчик создания урока.
//
// Создавать уроки могут только обычные пользователи: модераторам
// создание материалов запрещено.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

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

// Handler обрабатывает HTTP-запросы создания урока.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания урока.
type Service interface {
	Create(ctx context.Context, ownerID int64, req models.DummyLesson) (int64, error)
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
// @Summary Создать урок
// @Description Создает новый урок в курсе, владельцем становится текущий пользователь
// @Tags Lessons
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyLesson true "Данные урока"
// @Success 201 {object} map[string]any "Урок создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или запрещенная ссылка"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /lessons [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.lesson.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	principal := middlewarectx.Principal(r.Context())
	if !access.Check(access.MaterialsRules(access.ActionCreate), principal, access.ActionCreate, nil) {
		log.Error("permission denied")
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("permission denied"))
		return
	}

	var req models.DummyLesson
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

	id, err := h.service.Create(r.Context(), principal.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, videolink.ErrForbiddenLink):
			log.Error("forbidden link in description", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("description contains a forbidden link"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("parent course not found", slog.Int64("course_id", req.CourseID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("course not found"))
		default:
			log.Error("failed to create lesson", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create lesson"))
		}
		return
	}

	log.Info("success to create lesson", slog.Int64("id", id), slog.Int64("course_id", req.CourseID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
