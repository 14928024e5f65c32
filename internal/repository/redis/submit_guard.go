package redis

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/pkg/clients"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// releaseScript удаляет блокировку, только если она всё ещё принадлежит владельцу токена.
var releaseScript = r.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SubmitGuard не даёт одной сессии отправить заказ дважды, пока первая отправка не завершилась.
// TTL снимает блокировку, если процесс упал между Acquire и Release.
type SubmitGuard struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewSubmitGuard(client *clients.RedisClient, cfg *cfg.RedisCfg) *SubmitGuard {
	return &SubmitGuard{client: client, cfg: cfg}
}

// Acquire возвращает токен владельца или ok=false, если отправка для сессии уже идёт.
func (g *SubmitGuard) Acquire(ctx context.Context, sessionID string) (string, bool, error) {
	token := uuid.NewString()

	ok, err := g.client.Client.SetNX(ctx, g.lockKey(sessionID), token, g.cfg.SubmitLockTTL).Result()
	if err != nil {
		return "", false, e.Wrap(whereami.WhereAmI(), err)
	}
	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

// Release снимает блокировку с этим токеном. Чужую блокировку, взятую после истечения TTL, не трогает.
func (g *SubmitGuard) Release(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, g.client.Client, []string{g.lockKey(sessionID)}, token).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (g *SubmitGuard) lockKey(sessionID string) string {
	return fmt.Sprintf("checkout:lock:%s", sessionID)
}
