package snapshot

import (
	"context"
	"time"

	snapshotv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/redis"
)

// Store keeps snapshot blobs in Redis.
type Store struct {
	client redis.Client
	logger logger.Interface
	ttl    time.Duration
}

var _ snapshotv1.Store = (*Store)(nil)

// NewStore creates a snapshot store over a connected Redis client.
// A zero ttl falls back to the client's default expiration.
func NewStore(client redis.Client, log logger.Interface, ttl time.Duration) *Store {
	return &Store{
		client: client,
		logger: log,
		ttl:    ttl,
	}
}

// Get returns the blob stored under key, nil when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.retry(ctx, "get", func() error {
		var err error
		blob, err = s.client.Get(ctx, key)
		return err
	})
	if err != nil {
		return nil, errors.NewErrorDetails("failed to get snapshot", string(errors.SnapshotGetError), key).WithCause(err)
	}
	return blob, nil
}

// Put stores blob under key.
func (s *Store) Put(ctx context.Context, key string, blob []byte) error {
	err := s.retry(ctx, "put", func() error {
		return s.client.Set(ctx, key, blob, s.ttl)
	})
	if err != nil {
		return errors.NewErrorDetails("failed to put snapshot", string(errors.SnapshotPutError), key).WithCause(err)
	}
	return nil
}

// Keys lists snapshot keys starting with prefix in ascending order.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.retry(ctx, "keys", func() error {
		var err error
		keys, err = s.client.Keys(ctx, prefix)
		return err
	})
	if err != nil {
		return nil, errors.NewErrorDetails("failed to list snapshots", string(errors.SnapshotListError), prefix).WithCause(err)
	}
	return keys, nil
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// retry runs op once more after a successful reconnect when the
// first attempt failed on a dropped connection.
func (s *Store) retry(ctx context.Context, action string, op func() error) error {
	err := op()
	if err == nil || !errors.ErrorCodeEquals(err, string(errors.RedisConnectionError)) {
		return err
	}

	s.logger.WarnContext(ctx, "redis connection lost, reconnecting", logger.Field{Key: "action", Value: action})
	if !s.client.Reconnect(ctx) {
		return err
	}
	return op()
}
