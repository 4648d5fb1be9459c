// Package paymentcreate реализует HTTP-обработчик регистрации платежа
// за курс или урок.
package paymentcreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mlazareva/education-platform/internal/http/middlewarectx"
	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/models"
)

// Handler обрабатывает HTTP-запросы регистрации платежа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации платежа.
type Service interface {
	Create(ctx context.Context, userID int64, req models.DummyPayment) (int64, error)
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
// @Summary Зарегистрировать платеж
// @Description Создает запись о платеже текущего пользователя за курс или урок
// @Tags Payments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyPayment true "Данные платежа"
// @Success 201 {object} map[string]any "Платеж создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
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

	if req.CourseID == nil && req.LessonID == nil {
		log.Error("payment target missing")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("either course_id or lesson_id is required"))
		return
	}

	principal := middlewarectx.Principal(r.Context())
	id, err := h.service.Create(r.Context(), principal.UserID, req)
	if err != nil {
		log.Error("failed to create payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create payment"))
		return
	}

	log.Info("success to create payment", slog.Int64("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
