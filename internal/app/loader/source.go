package loader

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
)

// Source is a read-only memory mapping of a feed file.
type Source struct {
	data []byte
	size int64
}

// OpenSource maps the file at path. An empty file yields an empty source.
func OpenSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewErrorDetails("failed to open feed", string(errors.FeedOpenError), path).WithCause(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.NewErrorDetails("failed to stat feed", string(errors.FeedOpenError), path).WithCause(err)
	}
	if info.Size() == 0 {
		return &Source{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.NewErrorDetails("failed to map feed", string(errors.FeedOpenError), path).WithCause(err)
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &Source{data: data, size: info.Size()}, nil
}

// Bytes returns the mapped contents; invalid after Close.
func (s *Source) Bytes() []byte {
	return s.data
}

func (s *Source) Size() int64 {
	return s.size
}

func (s *Source) Close() error {
	if s.data == nil {
		return nil
	}
	data := s.data
	s.data = nil
	return unix.Munmap(data)
}
