package kafka

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	headerEventID   = "event_id"
	headerEventType = "event_type"
)

// OrderEventProducer публикует события заказов. Ключ сообщения: id заказа,
// поэтому события одного заказа попадают в одну партицию и не перемешиваются.
type OrderEventProducer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

var _ usecase.OrderEventPublisher = (*OrderEventProducer)(nil)

func NewOrderEventProducer(cfg *cfg.KafkaCfg, log logger.Logger) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
			WriteTimeout: 10 * time.Second,
		},
		logger: log,
		cfg:    cfg,
	}
}

// PublishOrderEvent пишет синхронно: outbox отмечает событие отправленным только после ack брокера.
func (p *OrderEventProducer) PublishOrderEvent(ctx context.Context, msg *usecase.OrderEventMsg) error {
	if err := p.writer.WriteMessages(ctx, orderEventMessage(msg)); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Debugf("order event %s (%s) published for order %d", msg.EventID, msg.EventType, msg.OrderID)
	return nil
}

func orderEventMessage(msg *usecase.OrderEventMsg) kafka.Message {
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.OrderID, 10)),
		Value: msg.Payload,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(msg.EventID)},
			{Key: headerEventType, Value: []byte(msg.EventType)},
		},
	}
}

// EnsureTopic создаёт топик на контроллере кластера, если его ещё нет.
func (p *OrderEventProducer) EnsureTopic(ctx context.Context) error {
	if len(p.cfg.Brokers) == 0 {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("no kafka brokers configured"))
	}

	conn, err := kafka.DialContext(ctx, p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	if partitions, err := conn.ReadPartitions(p.cfg.Topic); err == nil && len(partitions) > 0 {
		return nil
	}

	controller, err := conn.Controller()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ctrlConn, err := kafka.DialContext(ctx, p.cfg.NetworkMode, net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer ctrlConn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = ctrlConn.SetDeadline(deadline)
	}

	err = ctrlConn.CreateTopics(kafka.TopicConfig{
		Topic:             p.cfg.Topic,
		NumPartitions:     p.cfg.Partitions,
		ReplicationFactor: p.cfg.ReplicationFactor,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("create topic %s: %w", p.cfg.Topic, err))
	}

	p.logger.Infof("kafka topic %s created", p.cfg.Topic)
	return nil
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
