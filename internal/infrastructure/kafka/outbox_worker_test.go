package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutbox struct {
	mu        sync.Mutex
	pending   []*usecase.OutboxEvent
	processed []int64
	returned  []int64
	fetchErr  error
}

func (f *fakeOutbox) Create(_ context.Context, ev *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, ev)
	return ev, nil
}

func (f *fakeOutbox) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	n := min(limit, len(f.pending))
	batch := f.pending[:n]
	f.pending = f.pending[n:]
	return batch, nil
}

func (f *fakeOutbox) MarkAsProcessed(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processed = append(f.processed, id)
	return nil
}

func (f *fakeOutbox) ReturnToPending(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.returned = append(f.returned, id)
	return nil
}

func (f *fakeOutbox) ReclaimStuck(context.Context, int) (int64, error) {
	return 0, nil
}

type fakeProducer struct {
	mu     sync.Mutex
	keys   []int64
	failOn map[int64]error
}

func (f *fakeProducer) PublishOrderEvent(_ context.Context, msg *usecase.OrderEventMsg) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failOn[msg.OrderID]; err != nil {
		return err
	}
	f.keys = append(f.keys, msg.OrderID)
	return nil
}

func events(ids ...int64) []*usecase.OutboxEvent {
	out := make([]*usecase.OutboxEvent, 0, len(ids))
	for _, id := range ids {
		out = append(out, &usecase.OutboxEvent{ID: id, EventID: "evt", AggregateID: id * 10, Status: usecase.Processing})
	}
	return out
}

func newTestWorker(repo *fakeOutbox, producer *fakeProducer, batch int) *OutboxWorker {
	return NewOutboxWorker(repo, logger.NewNopLogger(), producer, &cfg.KafkaCfg{
		OutboxBatchSize:  batch,
		OutboxPollPeriod: time.Hour,
	}, "")
}

func TestProcessBatch_SendsAndMarks(t *testing.T) {
	repo := &fakeOutbox{pending: events(1, 2)}
	producer := &fakeProducer{}
	w := newTestWorker(repo, producer, 10)

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore)

	assert.Equal(t, []int64{10, 20}, producer.keys)
	assert.Equal(t, []int64{1, 2}, repo.processed)
	assert.Empty(t, repo.returned)
}

func TestProcessBatch_FailedEventGoesBackToQueue(t *testing.T) {
	repo := &fakeOutbox{pending: events(1, 2)}
	producer := &fakeProducer{failOn: map[int64]error{20: errors.New("dial tcp: connection refused")}}
	w := newTestWorker(repo, producer, 2)

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore, "full batch with a failure must stop draining")

	assert.Equal(t, []int64{1}, repo.processed)
	assert.Equal(t, []int64{2}, repo.returned)
}

func TestDrain_ProcessesAllFullBatches(t *testing.T) {
	repo := &fakeOutbox{pending: events(1, 2, 3, 4, 5)}
	producer := &fakeProducer{}
	w := newTestWorker(repo, producer, 2)

	w.drain(context.Background())

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, repo.processed)
	assert.Empty(t, repo.pending)
}

func TestDrain_StopsOnFetchError(t *testing.T) {
	repo := &fakeOutbox{fetchErr: errors.New("db down")}
	w := newTestWorker(repo, &fakeProducer{}, 2)

	w.drain(context.Background())
	assert.Empty(t, repo.processed)
}

func TestNewOutboxWorker_Defaults(t *testing.T) {
	w := NewOutboxWorker(&fakeOutbox{}, logger.NewNopLogger(), &fakeProducer{}, &cfg.KafkaCfg{}, "")
	assert.Equal(t, 100, w.batchSize)
	assert.Equal(t, 5*time.Second, w.pollPeriod)
}

func TestWake_DoesNotBlock(t *testing.T) {
	w := newTestWorker(&fakeOutbox{}, &fakeProducer{}, 1)

	w.wake()
	w.wake()

	assert.Len(t, w.notify, 1)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: errors.New("dial tcp 127.0.0.1:9092: connect: Connection Refused"), want: true},
		{err: errors.New("read: i/o timeout"), want: true},
		{err: errors.New("[3] Unknown Topic Or Partition"), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isRetryableError(tt.err))
	}
}
