package bookpublisher

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	bookpublisherv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes book events to a Kafka topic, keyed by stock.
type Publisher struct {
	writer messageWriter
	logger logger.Interface
	now    func() time.Time
}

var _ bookpublisherv1.Publisher = (*Publisher)(nil)

// NewPublisher creates a Kafka publisher for book events.
func NewPublisher(cfg config.PublisherConfig, log logger.Interface) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  cfg.MaxRetries,
		BatchTimeout: cfg.BatchTimeout,
	}

	return &Publisher{
		writer: writer,
		logger: log,
		now:    time.Now,
	}
}

// Publish sends one book event.
func (p *Publisher) Publish(ctx context.Context, ev *bookpublisherv1.BookEvent) error {
	ev.PublishedAt = p.now().UTC()

	value, err := bookpublisherv1.ToBytes(ev)
	if err != nil {
		return errors.NewErrorDetails("failed to encode book event", string(errors.PublisherError), ev.Stock).WithCause(err)
	}

	msg := kafka.Message{
		Key:   []byte(ev.Stock),
		Value: value,
		Time:  ev.PublishedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "action", Value: "publish_book"},
			logger.Field{Key: "stock", Value: ev.Stock},
			logger.Field{Key: "id", Value: ev.ID},
		)
		return errors.NewErrorDetails("failed to publish book event", string(errors.PublisherError), ev.Stock).WithCause(err)
	}

	p.logger.InfoContext(ctx, "book event published",
		logger.Field{Key: "stock", Value: ev.Stock},
		logger.Field{Key: "id", Value: ev.ID},
	)
	return nil
}

// Close flushes pending writes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
