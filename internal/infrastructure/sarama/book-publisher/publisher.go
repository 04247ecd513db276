package bookpublisher

import (
	"context"
	"time"

	"github.com/IBM/sarama"

	bookpublisherv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
)

// Publisher sends book events through a sarama SyncProducer.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logger.Interface
	now      func() time.Time
}

var _ bookpublisherv1.Publisher = (*Publisher)(nil)

// NewPublisher dials the brokers and creates a synchronous producer.
func NewPublisher(cfg config.PublisherConfig, log logger.Interface) (*Publisher, error) {
	scfg := sarama.NewConfig()
	scfg.Producer.Return.Successes = true
	scfg.Producer.RequiredAcks = sarama.WaitForAll
	scfg.Producer.Retry.Max = cfg.MaxRetries
	scfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, scfg)
	if err != nil {
		return nil, errors.NewErrorDetails("failed to create producer", string(errors.PublisherError), "brokers").WithCause(err)
	}

	return NewPublisherWithProducer(producer, cfg.Topic, log), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, log logger.Interface) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   log,
		now:      time.Now,
	}
}

// Publish sends one book event and waits for the broker ack.
func (p *Publisher) Publish(ctx context.Context, ev *bookpublisherv1.BookEvent) error {
	ev.PublishedAt = p.now().UTC()

	value, err := bookpublisherv1.ToBytes(ev)
	if err != nil {
		return errors.NewErrorDetails("failed to encode book event", string(errors.PublisherError), ev.Stock).WithCause(err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(ev.Stock),
		Value:     sarama.ByteEncoder(value),
		Timestamp: ev.PublishedAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "publish_book"},
			logger.Field{Key: "stock", Value: ev.Stock},
		)
		return errors.NewErrorDetails("failed to publish book event", string(errors.PublisherError), ev.Stock).WithCause(err)
	}

	p.logger.InfoContext(ctx, "book event published",
		logger.Field{Key: "stock", Value: ev.Stock},
		logger.Field{Key: "partition", Value: partition},
		logger.Field{Key: "offset", Value: offset},
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
