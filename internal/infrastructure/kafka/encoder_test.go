package kafka

import (
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtoEncoder_OrderCreated(t *testing.T) {
	enc := NewProtoEncoder()
	enc.now = func() time.Time { return time.Unix(1700000000, 0) }

	pid := int64(7)
	coords := domain.Coordinates{Lat: 41.3, Lng: 69.2}
	order := &domain.Order{
		ID:                  42,
		OrderNumber:         "ORD-1700000000000-42",
		RestaurantID:        3,
		TotalAmount:         decimal.RequireFromString("70000.50"),
		DeliveryCoordinates: &coords,
		PaymentMethod:       domain.PaymentCash,
		Status:              domain.OrderStatusNew,
		DeliveryTime:        domain.DeliveryASAP,
		CreatedAt:           time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{ProductID: &pid, ProductName: "Плов", Quantity: 2, Unit: "порция", Price: decimal.NewFromInt(35000)},
			{ProductName: "Удалённый товар", Quantity: 1, Price: decimal.RequireFromString("0.50")},
		},
	}

	payload, err := enc.EncodeOrderCreated("evt-1", order)
	require.NoError(t, err)

	event, err := DecodeOrderCreated(payload)
	require.NoError(t, err)

	fields := event.AsMap()
	assert.Equal(t, "evt-1", fields["event_id"])
	assert.Equal(t, "order.created", fields["event_type"])
	assert.Equal(t, "ORD-1700000000000-42", fields["order_number"])
	assert.Equal(t, "70000.5", fields["total_amount"])
	assert.Equal(t, float64(42), fields["order_id"])
	assert.Equal(t, "41.3,69.2", fields["delivery_coordinates"])
	assert.Equal(t, "2026-03-14T12:00:00Z", fields["created_at"])

	items, ok := fields["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, float64(7), first["product_id"])
	assert.Equal(t, "70000", first["total"])

	second := items[1].(map[string]any)
	_, hasID := second["product_id"]
	assert.False(t, hasID)
}

func TestDecodeOrderCreated_Garbage(t *testing.T) {
	_, err := DecodeOrderCreated([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
