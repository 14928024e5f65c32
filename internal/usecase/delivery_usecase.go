package usecase

import (
	"context"
	"math"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/shopspring/decimal"
)

// DeliveryUseCase считает стоимость доставки по дорожному расстоянию.
// Если сервис маршрутов недоступен, берётся расстояние по прямой с поправочным коэффициентом.
type DeliveryUseCase struct {
	restaurantRepo     RestaurantRepository
	routes             RouteDistanceInfra
	tariff             domain.DeliveryTariff
	straightLineFactor float64
	logger             logger.Logger
}

func NewDeliveryUC(
	restaurantRepo RestaurantRepository,
	routes RouteDistanceInfra,
	tariff domain.DeliveryTariff,
	straightLineFactor float64,
	logger logger.Logger,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		restaurantRepo:     restaurantRepo,
		routes:             routes,
		tariff:             tariff,
		straightLineFactor: straightLineFactor,
		logger:             logger,
	}
}

func (d *DeliveryUseCase) Tariff() domain.DeliveryTariff {
	return d.tariff
}

// Calculate: ресторан без координат доставляет бесплатно.
func (d *DeliveryUseCase) Calculate(ctx context.Context, req *DeliveryCalcReq) (*domain.DeliveryQuote, error) {
	const op = "DeliveryUseCase.Calculate"

	if req.RestaurantID <= 0 {
		return nil, e.Wrap(op, e.NewValidationError("restaurant_id", e.ErrMissingFields))
	}
	if err := req.Customer.Validate(); err != nil {
		return nil, e.Wrap(op, e.NewValidationError("customer", err))
	}

	restaurant, err := d.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	from, ok := restaurant.Location()
	if !ok {
		return &domain.DeliveryQuote{
			Cost:           decimal.Zero,
			FreeDelivery:   true,
			RestaurantName: restaurant.Name,
			Tariff:         d.tariff,
		}, nil
	}

	distance, kind := d.distance(ctx, from, req.Customer)

	return &domain.DeliveryQuote{
		Cost:           d.tariff.Price(distance),
		DistanceKm:     math.Round(distance*100) / 100,
		DistanceType:   kind,
		RestaurantName: restaurant.Name,
		Tariff:         d.tariff,
	}, nil
}

func (d *DeliveryUseCase) distance(ctx context.Context, from, to domain.Coordinates) (float64, domain.DistanceType) {
	km, err := d.routes.RoadDistanceKm(ctx, from, to)
	if err == nil {
		return km, domain.DistanceRoad
	}

	d.logger.Warnf("route service unavailable, using straight line distance: %v", err)
	return domain.HaversineKm(from, to) * d.straightLineFactor, domain.DistanceStraightLine
}
