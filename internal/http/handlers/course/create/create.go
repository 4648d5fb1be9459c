// Package create реализует HTTP-обработчик создания курса.
//
// Создавать курсы могут только обычные пользователи: модераторам
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
)

// Handler обрабатывает HTTP-запросы создания курса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания курса.
type Service interface {
	Create(ctx context.Context, ownerID int64, req models.DummyCourse) (int64, error)
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
// @Summary Создать курс
// @Description Создает новый курс, владельцем становится текущий пользователь
// @Tags Courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyCourse true "Данные курса"
// @Success 201 {object} map[string]any "Курс создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или запрещенная ссылка"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /courses [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.create"

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

	id, err := h.service.Create(r.Context(), principal.UserID, req)
	if err != nil {
		if errors.Is(err, videolink.ErrForbiddenLink) {
			log.Error("forbidden link in description", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("description contains a forbidden link"))
			return
		}
		log.Error("failed to create course", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create course"))
		return
	}

	log.Info("success to create course", slog.Int64("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
