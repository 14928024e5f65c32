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

type SessionRepo struct {
	client *clients.RedisClient
	conv   converter.SessionConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает сессию или nil, если её нет. Повреждённая запись тоже считается отсутствующей.
func (s *SessionRepo) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := s.client.Client.Get(ctx, s.sessionKey(sessionID)).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		s.logger.Warnf("corrupt session %s, starting new: %v", sessionID, e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	session := s.conv.ToEntity(&model)
	session.ID = sessionID

	return session, nil
}

// Save записывает сессию и продлевает её TTL.
func (s *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(s.conv.ToRedisModel(session))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, s.sessionKey(session.ID), data, s.cfg.SessionTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
