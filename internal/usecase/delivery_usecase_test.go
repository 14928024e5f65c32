package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTariff() domain.DeliveryTariff {
	return domain.DeliveryTariff{
		BaseRadiusKm: 2,
		BasePrice:    decimal.NewFromInt(5000),
		PricePerKm:   decimal.NewFromInt(2000),
	}
}

func newDeliveryUC(routes RouteDistanceInfra) *DeliveryUseCase {
	lat, lng := 41.311, 69.279
	restaurants := &fakeRestaurantRepo{restaurants: map[int64]domain.Restaurant{
		1: {ID: 1, Name: "Rayhon", Latitude: &lat, Longitude: &lng},
		2: {ID: 2, Name: "Без адреса"},
	}}

	return NewDeliveryUC(restaurants, routes, testTariff(), 1.3, logger.NewNopLogger())
}

var customer = domain.Coordinates{Lat: 41.35, Lng: 69.30}

func TestDelivery_Calculate_Road(t *testing.T) {
	uc := newDeliveryUC(fakeRoutes{km: 4.256})

	quote, err := uc.Calculate(context.Background(), &DeliveryCalcReq{RestaurantID: 1, Customer: customer})
	require.NoError(t, err)

	assert.Equal(t, domain.DistanceRoad, quote.DistanceType)
	assert.InDelta(t, 4.26, quote.DistanceKm, 1e-9)
	// 5000 + ceil(2.256) * 2000
	assert.True(t, decimal.NewFromInt(11000).Equal(quote.Cost), quote.Cost.String())
	assert.Equal(t, "Rayhon", quote.RestaurantName)
	assert.False(t, quote.FreeDelivery)
}

func TestDelivery_Calculate_StraightLineFallback(t *testing.T) {
	uc := newDeliveryUC(fakeRoutes{err: errBoom})

	quote, err := uc.Calculate(context.Background(), &DeliveryCalcReq{RestaurantID: 1, Customer: customer})
	require.NoError(t, err)

	from := domain.Coordinates{Lat: 41.311, Lng: 69.279}
	want := domain.HaversineKm(from, customer) * 1.3

	assert.Equal(t, domain.DistanceStraightLine, quote.DistanceType)
	assert.InDelta(t, want, quote.DistanceKm, 0.01)
	assert.True(t, testTariff().Price(want).Equal(quote.Cost))
}

func TestDelivery_Calculate_RestaurantWithoutLocation(t *testing.T) {
	uc := newDeliveryUC(fakeRoutes{km: 10})

	quote, err := uc.Calculate(context.Background(), &DeliveryCalcReq{RestaurantID: 2, Customer: customer})
	require.NoError(t, err)

	assert.True(t, quote.FreeDelivery)
	assert.True(t, quote.Cost.IsZero())
}

func TestDelivery_Calculate_Errors(t *testing.T) {
	uc := newDeliveryUC(fakeRoutes{km: 1})
	ctx := context.Background()

	_, err := uc.Calculate(ctx, &DeliveryCalcReq{Customer: customer})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.Calculate(ctx, &DeliveryCalcReq{RestaurantID: 1, Customer: domain.Coordinates{Lat: 0, Lng: 200}})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)

	_, err = uc.Calculate(ctx, &DeliveryCalcReq{RestaurantID: 5, Customer: customer})
	assert.ErrorIs(t, err, e.ErrRestaurantNotFound)
}
