package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
)

// Handler consumes messages in arrival order.
type Handler func(ctx context.Context, msg itchv1.Message) error

// Pipeline decodes a buffer on one goroutine and applies messages on another.
type Pipeline struct {
	capacity int
	codes    []byte
	backoff  *itchv1.Backoff
	status   *itchv1.ReadStatus
	logger   logger.Interface
}

// Option configures a Pipeline.
type Option func(p *Pipeline)

// WithCapacity sets the queue capacity.
func WithCapacity(capacity int) Option {
	return func(p *Pipeline) {
		p.capacity = capacity
	}
}

// WithSpinLimit sets the busy retries before the producer yields.
func WithSpinLimit(limit int) Option {
	return func(p *Pipeline) {
		p.backoff.SpinLimit = limit
	}
}

// WithCodes restricts decoding to the given message codes.
func WithCodes(codes ...byte) Option {
	return func(p *Pipeline) {
		p.codes = codes
	}
}

// WithStatus shares the read counters with the caller.
func WithStatus(status *itchv1.ReadStatus) Option {
	return func(p *Pipeline) {
		p.status = status
	}
}

// New creates a pipeline with a 65536 message queue.
func New(log logger.Interface, opts ...Option) *Pipeline {
	p := &Pipeline{
		capacity: 1 << 16,
		codes:    itchv1.BookCodes,
		backoff:  &itchv1.Backoff{SpinLimit: itchv1.DefaultSpinLimit},
		status:   &itchv1.ReadStatus{},
		logger:   log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Status returns the live read counters.
func (p *Pipeline) Status() *itchv1.ReadStatus {
	return p.status
}

// Backoff returns the producer's wait policy.
func (p *Pipeline) Backoff() *itchv1.Backoff {
	return p.backoff
}

// Run frames buf and hands every decoded message to handler. It returns the
// number of bytes framed. A trailing partial record ends the run without error.
func (p *Pipeline) Run(ctx context.Context, buf []byte, handler Handler) (int, error) {
	queue := NewQueue(p.capacity)
	g, gctx := errgroup.WithContext(ctx)

	var consumed int
	g.Go(func() error {
		defer queue.Close()

		reader := itchv1.NewReader(queue,
			itchv1.WithCodes(p.codes...),
			itchv1.WithWait(p.backoff.Wait),
			itchv1.WithDone(gctx.Done()),
			itchv1.WithStatus(p.status),
		)
		consumed = reader.ReadAll(buf)

		if err := gctx.Err(); err != nil {
			return err
		}
		if consumed < len(buf) {
			p.logger.WarnContext(ctx, "feed ended on an incomplete record",
				logger.Field{Key: "action", Value: "pipeline_produce"},
				logger.Field{Key: "consumed", Value: consumed},
				logger.Field{Key: "total", Value: len(buf)},
			)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case msg, ok := <-queue.Messages():
				if !ok {
					return nil
				}
				if err := handler(gctx, msg); err != nil {
					return err
				}
			}
		}
	})

	err := g.Wait()
	return consumed, err
}
