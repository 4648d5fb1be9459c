// Package toggle реализует HTTP-обработчик переключения подписки на курс.
//
// Если подписка текущего пользователя на курс существует, она удаляется,
// иначе создается: два последовательных вызова возвращают исходное состояние.
package toggle

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
	"github.com/mlazareva/education-platform/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы переключения подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики переключения подписки.
type Service interface {
	Toggle(ctx context.Context, userID, courseID int64) (bool, error)
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
// @Summary Переключить подписку на курс
// @Description Создает подписку текущего пользователя на курс или удаляет существующую
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummySubscription true "Идентификатор курса"
// @Success 201 {object} map[string]any "Подписка добавлена"
// @Success 204 "Подписка удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/toggle [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.toggle"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySubscription
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

	principal := middlewarectx.Principal(r.Context())
	added, err := h.service.Toggle(r.Context(), principal.UserID, req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("course not found", slog.Int64("course_id", req.CourseID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("course not found"))
			return
		}
		log.Error("failed to toggle subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to toggle subscription"))
		return
	}

	if added {
		log.Info("subscription added", slog.Int64("course_id", req.CourseID))
		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"message": "subscription added",
		}))
		return
	}

	log.Info("subscription removed", slog.Int64("course_id", req.CourseID))
	w.WriteHeader(http.StatusNoContent)
}
