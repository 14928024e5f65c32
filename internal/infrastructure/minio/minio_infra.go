package minio

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// ImagePresigner — источник подписанных ссылок (ImageRepo поверх MinIO).
type ImagePresigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type cachedURL struct {
	url       string
	refreshAt time.Time
}

// ImageResolver превращает сохранённые пути картинок в ссылки для клиента:
// абсолютные URL отдаются как есть, пути вида /uploads/... получают PUBLIC_BASE_URL,
// остальное считается ключом объекта в бакете и подписывается.
// Подписанные ссылки кэшируются на половину их времени жизни.
type ImageResolver struct {
	presigner     ImagePresigner
	publicBaseURL string
	ttl           time.Duration
	logger        logger.Logger
	now           func() time.Time

	mu    sync.Mutex
	cache map[string]cachedURL
}

func NewImageResolver(presigner ImagePresigner, cfg *cfg.MinIOCfg, logger logger.Logger) *ImageResolver {
	return &ImageResolver{
		presigner:     presigner,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		ttl:           cfg.PresignTTL,
		logger:        logger,
		now:           time.Now,
		cache:         make(map[string]cachedURL),
	}
}

var _ usecase.ImageURLResolver = (*ImageResolver)(nil)

// Resolve никогда не возвращает ошибку: картинка без ссылки лучше, чем неотданное меню.
func (m *ImageResolver) Resolve(ctx context.Context, raw string) string {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "/"):
		return m.publicBaseURL + raw
	}

	if u, ok := m.cached(raw); ok {
		return u
	}

	u, err := m.presigner.PresignGet(ctx, raw, m.ttl)
	if err != nil {
		m.logger.Warnf("failed to presign image %s: %v", raw, err)
		return ""
	}

	m.mu.Lock()
	m.cache[raw] = cachedURL{url: u, refreshAt: m.now().Add(m.ttl / 2)}
	m.mu.Unlock()

	return u
}

func (m *ImageResolver) cached(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cache[key]
	if !ok {
		return "", false
	}
	if !m.now().Before(c.refreshAt) {
		delete(m.cache, key)
		return "", false
	}

	return c.url, true
}
