package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "food")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "delivery")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "orders")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "db/migrations", c.Db.MigrationsPath)
	assert.Equal(t, "http://localhost:8080/api/v1", c.Backend.BaseURL)
	assert.Equal(t, "Asia/Tashkent", c.Storefront.Location.String())
	assert.Equal(t, "ru", c.Storefront.DefaultLanguage)
	assert.Equal(t, 30*time.Second, c.Redis.SubmitLockTTL)
	assert.Equal(t, 2.0, c.Delivery.BaseRadiusKm)
	assert.True(t, decimal.NewFromInt(5000).Equal(c.Delivery.BasePrice))
	assert.True(t, decimal.NewFromInt(2000).Equal(c.Delivery.PricePerKm))
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BACKEND_URL", "http://menu:9000/api/v1/")
	t.Setenv("CART_TTL", "1h")
	t.Setenv("DEFAULT_LANGUAGE", "uz")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "http://menu:9000/api/v1", c.Backend.BaseURL)
	assert.Equal(t, time.Hour, c.Redis.CartTTL)
	assert.Equal(t, "uz", c.Storefront.DefaultLanguage)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_USER", "")

	_, err := Load(logger.NewNopLogger())
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"DEFAULT_LANGUAGE", "en"},
		{"CART_TTL", "forever"},
		{"DELIVERY_BASE_PRICE", "cheap"},
		{"KAFKA_PARTITIONS", "three"},
		{"STORE_TIMEZONE", "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(logger.NewNopLogger())
			require.Error(t, err)
		})
	}
}
