package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Создание заказа
//	@Description	Сохраняет заказ с позициями и ставит событие order.created в outbox
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Заказ"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		WriteError(w, e.NewValidationError("delivery_coordinates", e.ErrInvalidCoordinates))
		return
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), draft)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, CreateOrderResponse{
		Message: "Заказ успешно создан",
		Order:   newOrderResponse(order),
	})
}

// getOrder
//
//	@Summary	Заказ по номеру
//	@Tags		orders
//	@Produce	json
//	@Param		number	path		string	true	"Номер заказа"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{number} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	number := strings.TrimSpace(chi.URLParam(r, "number"))
	if number == "" {
		WriteError(w, e.NewValidationError("number", e.ErrStatusBadRequest))
		return
	}

	order, err := o.orderUsecase.GetOrder(r.Context(), number)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}
