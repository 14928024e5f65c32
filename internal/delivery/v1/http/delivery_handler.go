package http

import (
	"fmt"
	"net/http"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/DRSN-tech/food-delivery/pkg/money"
)

type DeliveryHandler struct {
	deliveryUsecase usecase.DeliveryUC
	logger          logger.Logger
}

func NewDeliveryHandler(deliveryUsecase usecase.DeliveryUC, logger logger.Logger) *DeliveryHandler {
	return &DeliveryHandler{deliveryUsecase: deliveryUsecase, logger: logger}
}

// calculate
//
//	@Summary		Расчёт стоимости доставки
//	@Description	Расстояние берётся из сервиса маршрутов, при его недоступности по прямой
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DeliveryCalcRequest	true	"Ресторан и точка клиента"
//	@Success		200		{object}	DeliveryQuoteResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/delivery/calculate [post]
func (d *DeliveryHandler) calculate(w http.ResponseWriter, r *http.Request) {
	var req DeliveryCalcRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.RestaurantID <= 0 || req.CustomerLat == nil || req.CustomerLng == nil {
		WriteError(w, e.ErrMissingFields)
		return
	}

	to, err := domain.NewCoordinates(*req.CustomerLat, *req.CustomerLng)
	if err != nil {
		WriteError(w, err)
		return
	}

	quote, err := d.deliveryUsecase.Calculate(r.Context(), &usecase.DeliveryCalcReq{
		RestaurantID: req.RestaurantID,
		Customer:     to,
	})
	if err != nil {
		d.logger.Warnf("delivery calculation for restaurant %d failed: %v", req.RestaurantID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newDeliveryQuoteResponse(quote))
}

// info
//
//	@Summary	Тарифы доставки
//	@Tags		delivery
//	@Produce	json
//	@Success	200	{object}	DeliveryInfoResponse
//	@Router		/delivery/info [get]
func (d *DeliveryHandler) info(w http.ResponseWriter, _ *http.Request) {
	tariff := d.deliveryUsecase.Tariff()

	WriteSuccess(w, http.StatusOK, DeliveryInfoResponse{
		BaseRadiusKm: tariff.BaseRadiusKm,
		BasePrice:    tariff.BasePrice,
		PricePerKm:   tariff.PricePerKm,
		Description: fmt.Sprintf(
			"До %s км - %s сум, далее %s сум за каждый км",
			formatKm(tariff.BaseRadiusKm), money.Format(tariff.BasePrice), money.Format(tariff.PricePerKm),
		),
	})
}

func formatKm(km float64) string {
	return fmt.Sprintf("%g", km)
}
