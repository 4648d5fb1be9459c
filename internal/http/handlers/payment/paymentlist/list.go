// Package paymentlist реализует HTTP-обработчик списка платежей
// с фильтрацией, поиском и сортировкой.
//
// Пользователь без прав модератора видит только собственные платежи.
package paymentlist

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

// Handler обрабатывает HTTP-запросы списка платежей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка платежей.
type Service interface {
	List(ctx context.Context, userID int64, isModerator bool, filter models.PaymentFilter) ([]*models.Payment, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func parseOptionalID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// ServeHTTP godoc
// @Summary Список платежей
// @Description Возвращает платежи с фильтрацией по курсу, уроку и способу оплаты, поиском и сортировкой
// @Tags Payments
// @Produce  json
// @Security BearerAuth
// @Param user_id query int false "Фильтр по пользователю (только для модераторов)"
// @Param course_id query int false "Фильтр по курсу"
// @Param lesson_id query int false "Фильтр по уроку"
// @Param payment_method query string false "Фильтр по способу оплаты: cash или transfer"
// @Param search query string false "Поиск по email, названию курса или урока"
// @Param ordering query string false "Сортировка: date или amount, префикс - для убывания"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Список платежей"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /payments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	method := query.Get("payment_method")
	if method != "" && method != models.PaymentMethodCash && method != models.PaymentMethodTransfer {
		log.Error("invalid payment_method filter", slog.String("payment_method", method))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("payment_method must be cash or transfer"))
		return
	}

	switch query.Get("ordering") {
	case "", "date", "-date", "amount", "-amount":
	default:
		log.Error("invalid ordering field", slog.String("ordering", query.Get("ordering")))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("ordering must be date or amount"))
		return
	}

	filter := models.PaymentFilter{
		UserID:        parseOptionalID(query.Get("user_id")),
		CourseID:      parseOptionalID(query.Get("course_id")),
		LessonID:      parseOptionalID(query.Get("lesson_id")),
		PaymentMethod: method,
		Search:        query.Get("search"),
		OrderBy:       query.Get("ordering"),
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(query.Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	principal := middlewarectx.Principal(r.Context())
	result, err := h.service.List(r.Context(), principal.UserID, principal.IsModerator, filter)
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list payments"))
		return
	}

	log.Info("success to list payments", slog.Int("count", len(result)))
	render.JSON(w, r, response.StatusOKWithData(result))
}
