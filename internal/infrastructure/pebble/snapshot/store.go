package snapshot

import (
	"context"
	"slices"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	snapshotv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
)

// Store keeps snapshot blobs in an embedded pebble database.
type Store struct {
	db *pebble.DB
}

var _ snapshotv1.Store = (*Store)(nil)

// Open opens or creates the database at dir. A nil fs uses the OS filesystem.
func Open(dir string, fs vfs.FS) (*Store, error) {
	opts := &pebble.Options{}
	if fs != nil {
		opts.FS = fs
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.NewErrorDetails("failed to open snapshot store", string(errors.PebbleOpenError), dir).WithCause(err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	val, closer, err := s.db.Get([]byte(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewErrorDetails("failed to get snapshot", string(errors.SnapshotGetError), key).WithCause(err)
	}
	defer closer.Close()

	return slices.Clone(val), nil
}

func (s *Store) Put(_ context.Context, key string, blob []byte) error {
	if err := s.db.Set([]byte(key), blob, pebble.Sync); err != nil {
		return errors.NewErrorDetails("failed to put snapshot", string(errors.SnapshotPutError), key).WithCause(err)
	}
	return nil
}

// Keys returns keys with the given prefix; pebble iterates in byte order.
func (s *Store) Keys(_ context.Context, prefix string) ([]string, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: upperBound([]byte(prefix)),
	})
	if err != nil {
		return nil, errors.NewErrorDetails("failed to list snapshots", string(errors.SnapshotListError), prefix).WithCause(err)
	}
	defer iter.Close()

	var keys []string
	for iter.First(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.NewErrorDetails("failed to list snapshots", string(errors.SnapshotListError), prefix).WithCause(err)
	}
	return keys, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// upperBound returns the smallest key greater than every key with the
// given prefix, or nil when no such key exists.
func upperBound(prefix []byte) []byte {
	end := slices.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
