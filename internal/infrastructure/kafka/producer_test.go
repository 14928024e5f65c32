package kafka

import (
	"testing"

	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestOrderEventMessage(t *testing.T) {
	msg := orderEventMessage(usecase.NewOrderEventMsg(&usecase.OutboxEvent{
		EventID:     "5f0c",
		EventType:   usecase.EventOrderCreated,
		AggregateID: 42,
		Payload:     []byte{0x0a},
	}))

	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, []byte{0x0a}, msg.Value)
	if assert.Len(t, msg.Headers, 2) {
		assert.Equal(t, headerEventID, msg.Headers[0].Key)
		assert.Equal(t, "5f0c", string(msg.Headers[0].Value))
		assert.Equal(t, usecase.EventOrderCreated, string(msg.Headers[1].Value))
	}
}
