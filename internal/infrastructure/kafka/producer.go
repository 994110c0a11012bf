package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/msr-works/storefront-backend/internal/cfg"
	"github.com/msr-works/storefront-backend/internal/usecase"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/msr-works/storefront-backend/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent — полезная нагрузка события оформленного заказа.
// Ключ сообщения — идентификатор заказа, чтобы события одного заказа
// попадали в одну партицию.
type OrderPlacedEvent struct {
	EventID        string           `json:"event_id"`
	EventTimestamp int64            `json:"event_timestamp"`
	OrderID        string           `json:"order_id"`
	SessionID      string           `json:"session_id"`
	Lines          []OrderLineEvent `json:"lines"`
	Subtotal       string           `json:"subtotal"`
	Shipping       string           `json:"shipping"`
	Tax            string           `json:"tax"`
	Total          string           `json:"total"`
	PlacedAt       int64            `json:"placed_at"`
}

type OrderLineEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

func (p *Producer) PublishOrderPlaced(ctx context.Context, req *usecase.OrderPlacedReq) error {
	value, err := p.GetPayloadBytes(req)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(req.OrderID),
		Value: value,
	})
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) GetPayloadBytes(req *usecase.OrderPlacedReq) ([]byte, error) {
	lines := make([]OrderLineEvent, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, OrderLineEvent{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	event := &OrderPlacedEvent{
		EventID:        uuid.NewString(),
		EventTimestamp: time.Now().UnixNano(),
		OrderID:        req.OrderID,
		SessionID:      req.SessionID,
		Lines:          lines,
		Subtotal:       req.Totals.Subtotal.String(),
		Shipping:       req.Totals.Shipping.String(),
		Tax:            req.Totals.Tax.String(),
		Total:          req.Totals.Total.String(),
		PlacedAt:       req.PlacedAt.UnixNano(),
	}

	return json.Marshal(event)
}
