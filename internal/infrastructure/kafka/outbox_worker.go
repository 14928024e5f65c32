package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	outboxChannel    = "outbox_pending"
	stuckAfter       = 5 * time.Minute
	listenWait       = 30 * time.Second
	reconnectBackoff = 2 * time.Second
)

// OutboxStore — очередь outbox_events вместе с возвратом зависших событий.
type OutboxStore interface {
	usecase.OutboxRepository
	ReclaimStuck(ctx context.Context, olderThanSeconds int) (int64, error)
}

// OutboxWorker переносит события из outbox_events в Kafka. Разбор очереди запускается
// при старте, по NOTIFY outbox_pending и раз в pollPeriod на случай потерянного уведомления.
type OutboxWorker struct {
	repo       OutboxStore
	logger     logger.Logger
	producer   usecase.OrderEventPublisher
	batchSize  int
	pollPeriod time.Duration
	dbConnStr  string
	notify     chan struct{}
	stop       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

func NewOutboxWorker(
	repo OutboxStore,
	logger logger.Logger,
	producer usecase.OrderEventPublisher,
	cfg *cfg.KafkaCfg,
	dbConnStr string,
) *OutboxWorker {
	const (
		defaultBatchSize  = 100
		defaultPollPeriod = 5 * time.Second
	)

	batchSize, pollPeriod := cfg.OutboxBatchSize, cfg.OutboxPollPeriod
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if pollPeriod <= 0 {
		pollPeriod = defaultPollPeriod
	}

	return &OutboxWorker{
		repo:       repo,
		logger:     logger,
		producer:   producer,
		batchSize:  batchSize,
		pollPeriod: pollPeriod,
		dbConnStr:  dbConnStr,
		notify:     make(chan struct{}, 1),
		stop:       make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()
}

// Stop дожидается завершения обеих горутин. Повторный вызов безопасен.
func (w *OutboxWorker) Stop(context.Context) error {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
	return nil
}

func (w *OutboxWorker) run(ctx context.Context) {
	if n, err := w.repo.ReclaimStuck(ctx, int(stuckAfter.Seconds())); err != nil {
		w.logger.Warnf("reclaim stuck outbox events failed: %v", err)
	} else if n > 0 {
		w.logger.Infof("returned %d stuck outbox events to queue", n)
	}

	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(w.pollPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Worker stopped by context cancellation")
			return
		case <-w.stop:
			return
		case <-ticker.C:
			w.drain(ctx)
		case <-w.notify:
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) wake() {
	select {
	case w.notify <- struct{}{}:
	default:
	}
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	var conn *pgx.Conn

	connect := func() error {
		c, err := pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			return e.Wrap("failed to connect for LISTEN", err)
		}

		if _, err := c.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
			_ = c.Close(ctx)
			return e.Wrap("failed to LISTEN", err)
		}

		conn = c
		w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
		return nil
	}

	if err := connect(); err != nil {
		w.logger.Warnf("Initial connect failed, falling back to polling: %v", err)
		return
	}
	defer func() {
		if conn != nil {
			_ = conn.Close(context.WithoutCancel(ctx))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		if conn == nil {
			if !w.sleep(ctx, reconnectBackoff) {
				return
			}
			if err := connect(); err != nil {
				w.logger.Warnf("Reconnect failed: %v", err)
			}
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, listenWait)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Warnf("Connection lost: %v. Reconnecting...", err)
			_ = conn.Close(ctx)
			conn = nil
			continue
		}

		if notif != nil && notif.Channel == outboxChannel {
			w.logger.Debugf("Received outbox notification")
			w.wake()
		}
	}
}

func (w *OutboxWorker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	case <-w.stop:
		return false
	}
}

// processBatch отправляет пачку событий. hasMore == true, только если пачка была полной
// и все отправки прошли: иначе при лежащей Kafka разбор зациклился бы.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.batchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	failed := 0
	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			failed++
			w.logger.Warnf("event %s not sent: %v", event.EventID, err)

			if err := w.repo.ReturnToPending(ctx, event.ID); err != nil {
				w.logger.Warnf("return to pending failed: %v", err)
			}
			continue
		}

		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return failed == 0 && len(events) == w.batchSize, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	if err := w.producer.PublishOrderEvent(ctx, usecase.NewOrderEventMsg(event)); err != nil {
		if isRetryableError(err) {
			return e.Wrap("Temporary Kafka failure, will retry", err)
		}
		return e.Wrap("Permanent Kafka failure", err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
