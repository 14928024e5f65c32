package domain

import (
	"testing"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("41.311081, 69.240562")
	require.NoError(t, err)
	assert.Equal(t, 41.311081, c.Lat)
	assert.Equal(t, 69.240562, c.Lng)
	assert.Equal(t, "41.311081,69.240562", c.String())

	for _, bad := range []string{"", "41.3", "abc,69", "41,xyz", "91,0", "0,181"} {
		_, err := ParseCoordinates(bad)
		assert.ErrorIs(t, err, e.ErrInvalidCoordinates, bad)
	}
}

func TestHaversineKm(t *testing.T) {
	a := Coordinates{Lat: 41.311081, Lng: 69.240562}
	assert.InDelta(t, 0, HaversineKm(a, a), 1e-9)

	// Один градус широты ≈ 111.19 км.
	b := Coordinates{Lat: 42.311081, Lng: 69.240562}
	assert.InDelta(t, 111.19, HaversineKm(a, b), 0.05)
}

func TestDeliveryTariff_Price(t *testing.T) {
	tariff := DeliveryTariff{BaseRadiusKm: 2, BasePrice: dec("5000"), PricePerKm: dec("2000")}

	tests := []struct {
		km   float64
		want string
	}{
		{0, "5000"},
		{2, "5000"},
		{2.01, "7000"},
		{3, "7000"},
		{3.5, "9000"},
		{10, "21000"},
	}

	for _, tt := range tests {
		assert.True(t, dec(tt.want).Equal(tariff.Price(tt.km)), "km=%v got %s", tt.km, tariff.Price(tt.km))
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageUz, ParseLanguage("UZ", LanguageRu))
	assert.Equal(t, LanguageRu, ParseLanguage("ru", LanguageUz))
	assert.Equal(t, LanguageUz, ParseLanguage("en", LanguageUz))
	assert.Equal(t, LanguageRu, ParseLanguage("", LanguageRu))
}
