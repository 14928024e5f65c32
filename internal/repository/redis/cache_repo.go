package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/redis/converter"
	"github.com/DRSN-tech/food-delivery/pkg/clients"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CatalogCacheRepo кэширует меню ресторана, чтобы витрина не ходила в API на каждый запрос.
type CatalogCacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCatalogCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CatalogCacheRepo {
	return &CatalogCacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает закэшированный каталог или nil при промахе.
// Повреждённая запись удаляется и считается промахом.
func (c *CatalogCacheRepo) Get(ctx context.Context, restaurantID int64) (*domain.Catalog, error) {
	key := c.catalogKey(restaurantID)

	val, err := c.client.Client.Get(ctx, key).Result()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := redisValueToBytes(val, key)
	if err != nil {
		c.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	var model converter.CatalogRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(ctx, key)
		return nil, nil
	}

	if model.RestaurantID != restaurantID {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", restaurantID, model.RestaurantID)
		c.drop(ctx, key)
		return nil, nil
	}

	return c.conv.ToEntity(&model), nil
}

// Set кэширует каталог с TTL из конфигурации.
func (c *CatalogCacheRepo) Set(ctx context.Context, catalog *domain.Catalog) error {
	data, err := json.Marshal(c.conv.ToRedisModel(catalog))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.catalogKey(catalog.RestaurantID), data, c.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Invalidate удаляет каталоги ресторанов из кэша.
func (c *CatalogCacheRepo) Invalidate(ctx context.Context, restaurantIDs ...int64) error {
	if len(restaurantIDs) == 0 {
		return nil
	}

	keys := make([]string, len(restaurantIDs))
	for i, id := range restaurantIDs {
		keys[i] = c.catalogKey(id)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CatalogCacheRepo) drop(ctx context.Context, key string) {
	if err := c.client.Client.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
		c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// catalogKey возвращает Redis-ключ каталога ресторана
func (c *CatalogCacheRepo) catalogKey(restaurantID int64) string {
	return fmt.Sprintf("catalog:%d", restaurantID)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
