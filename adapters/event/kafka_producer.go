package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/minhvu/portfolio-cms/internal/config"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

const TopicContentEvents = "content.events"

// ContentEvent describes one mutation of the portfolio document.
type ContentEvent struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     int       `json:"id,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher is what the content use cases see. Publish must never fail the
// calling request; producer errors are logged and swallowed.
type Publisher interface {
	Publish(ctx context.Context, entity, action string, id int)
	Close()
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

// NewKafkaPublisher returns a publisher for the content.events topic, or a
// no-op publisher when no brokers are configured.
func NewKafkaPublisher(cfg config.Config, log logger.Logger) Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("kafka brokers not configured, content events disabled")
		return nopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("kafka content event producer initialized", zap.Strings("brokers", cfg.Kafka.Brokers))
	return &kafkaPublisher{writer: writer, logger: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, entity, action string, id int) {
	evt := ContentEvent{Entity: entity, Action: action, ID: id, At: time.Now().UTC()}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("failed to marshal content event", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entity),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish content event", err,
			zap.String("entity", entity), zap.String("action", action))
	}
}

func (p *kafkaPublisher) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, entity, action string, id int) {}
func (nopPublisher) Close()                                                     {}
