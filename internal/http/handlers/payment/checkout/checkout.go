// Package checkout реализует HTTP-обработчик создания сессии оплаты
// подписки через внешнего платёжного провайдера.
package checkout

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
	"github.com/mlazareva/education-platform/internal/services/payment"
)

// Handler обрабатывает HTTP-запросы создания сессии оплаты.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания сессии оплаты.
type Service interface {
	Checkout(ctx context.Context, userID int64, req models.DummyCheckout) (*payment.CheckoutResult, error)
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
// @Summary Создать сессию оплаты
// @Description Конвертирует сумму в доллары и создает сессию оплаты у провайдера
// @Tags Payments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyCheckout true "Сумма и название продукта"
// @Success 200 {object} map[string]any "Идентификатор сессии и адрес оплаты"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации данных"
// @Failure 502 {object} response.ErrorResponse "Ошибка внешнего сервиса"
// @Router /payments/checkout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.checkout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCheckout
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
	result, err := h.service.Checkout(r.Context(), principal.UserID, req)
	if err != nil {
		log.Error("failed to create checkout session", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to create checkout session"))
		return
	}

	log.Info("success to create checkout session", slog.String("session_id", result.SessionID))
	render.JSON(w, r, response.StatusOKWithData(result))
}
