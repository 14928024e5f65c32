package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// DistanceType показывает, откуда взято расстояние.
type DistanceType string

const (
	DistanceRoad         DistanceType = "road"
	DistanceStraightLine DistanceType = "straight_line"
)

// DeliveryTariff: в пределах BaseRadiusKm платится BasePrice,
// каждый начатый километр сверх радиуса добавляет PricePerKm.
type DeliveryTariff struct {
	BaseRadiusKm float64
	BasePrice    decimal.Decimal
	PricePerKm   decimal.Decimal
}

func (t DeliveryTariff) Price(distanceKm float64) decimal.Decimal {
	if distanceKm <= t.BaseRadiusKm {
		return t.BasePrice
	}

	extraKm := int64(math.Ceil(distanceKm - t.BaseRadiusKm))
	return t.BasePrice.Add(t.PricePerKm.Mul(decimal.NewFromInt(extraKm)))
}

// DeliveryQuote — результат расчёта доставки для ресторана и точки клиента.
type DeliveryQuote struct {
	Cost           decimal.Decimal
	DistanceKm     float64
	DistanceType   DistanceType
	FreeDelivery   bool
	RestaurantName string
	Tariff         DeliveryTariff
}
