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

// CartRepo хранит корзину сессии одним JSON-массивом строк под ключом cart:<session>.
// Каждая запись перезаписывает массив целиком: побеждает последняя.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает корзину сессии. Отсутствующая или повреждённая запись даёт пустую корзину.
func (c *CartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	key := c.cartKey(sessionID)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return domain.NewCart(nil), nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CartLineRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("corrupt cart for session %s, starting empty: %v", sessionID, e.Wrap(whereami.WhereAmI(), err))
		return domain.NewCart(nil), nil
	}

	return domain.NewCart(c.conv.ToArrEntity(models)), nil
}

// Save записывает корзину и продлевает TTL. Пустая корзина удаляет ключ.
func (c *CartRepo) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if cart.IsEmpty() {
		return c.Delete(ctx, sessionID)
	}

	data, err := json.Marshal(c.conv.ToArrRedisModel(cart.Lines()))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(sessionID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
