package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant — ресторан, меню которого показывает витрина.
// Координаты нужны только для расчёта доставки и могут отсутствовать.
type Restaurant struct {
	ID         int64
	Name       string
	Address    string
	Phone      string
	LogoURL    string
	ServiceFee decimal.Decimal
	Latitude   *float64
	Longitude  *float64
	ClickURL   string
	PaymeURL   string
	IsActive   bool
	CreatedAt  time.Time
}

// Location возвращает координаты ресторана, если обе заданы.
func (r *Restaurant) Location() (Coordinates, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return Coordinates{}, false
	}

	return Coordinates{Lat: *r.Latitude, Lng: *r.Longitude}, true
}
