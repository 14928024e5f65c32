package kafka

import (
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoEncoder кодирует событие order.created как google.protobuf.Struct.
// Деньги передаются строками, чтобы не терять точность на float.
type ProtoEncoder struct {
	now func() time.Time
}

func NewProtoEncoder() *ProtoEncoder {
	return &ProtoEncoder{now: time.Now}
}

var _ usecase.OrderEventEncoder = (*ProtoEncoder)(nil)

func (p *ProtoEncoder) EncodeOrderCreated(eventID string, order *domain.Order) ([]byte, error) {
	event, err := structpb.NewStruct(orderCreatedFields(eventID, order, p.now()))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	payload, err := proto.Marshal(event)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return payload, nil
}

func orderCreatedFields(eventID string, order *domain.Order, now time.Time) map[string]any {
	items := make([]any, 0, len(order.Items))
	for _, it := range order.Items {
		item := map[string]any{
			"product_name": it.ProductName,
			"quantity":     it.Quantity,
			"unit":         it.Unit,
			"price":        it.Price.String(),
			"total":        it.Total().String(),
		}
		if it.ProductID != nil {
			item["product_id"] = *it.ProductID
		}
		items = append(items, item)
	}

	fields := map[string]any{
		"event_id":         eventID,
		"event_type":       usecase.EventOrderCreated,
		"event_timestamp":  now.UnixNano(),
		"order_id":         order.ID,
		"order_number":     order.OrderNumber,
		"restaurant_id":    order.RestaurantID,
		"total_amount":     order.TotalAmount.String(),
		"payment_method":   string(order.PaymentMethod),
		"status":           string(order.Status),
		"customer_name":    order.CustomerName,
		"customer_phone":   order.CustomerPhone,
		"delivery_address": order.DeliveryAddress,
		"delivery_date":    order.DeliveryDate,
		"delivery_time":    order.DeliveryTime,
		"comment":          order.Comment,
		"created_at":       order.CreatedAt.UTC().Format(time.RFC3339),
		"items":            items,
	}
	if order.DeliveryCoordinates != nil {
		fields["delivery_coordinates"] = order.DeliveryCoordinates.String()
	}

	return fields
}

// DecodeOrderCreated разбирает payload обратно в Struct (для потребителей и тестов).
func DecodeOrderCreated(payload []byte) (*structpb.Struct, error) {
	var event structpb.Struct
	if err := proto.Unmarshal(payload, &event); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &event, nil
}
