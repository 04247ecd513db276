package itchv1

import "sync/atomic"

// MessageCounters are updated by the framer and may be read concurrently.
type MessageCounters struct {
	// Stall counts failed hand-off attempts against a full sink.
	Stall   atomic.Uint64
	Loaded  atomic.Uint64
	Skipped atomic.Uint64
	Read    atomic.Uint64
}

// ReadStatus tracks decode progress over one buffer.
type ReadStatus struct {
	Messages   MessageCounters
	BytesRead  atomic.Uint64
	TotalBytes atomic.Uint64
}

// ReadStats is a point-in-time copy of ReadStatus.
type ReadStats struct {
	Stall      uint64
	Loaded     uint64
	Skipped    uint64
	Read       uint64
	BytesRead  uint64
	TotalBytes uint64
}

// Snapshot copies the counters.
func (s *ReadStatus) Snapshot() ReadStats {
	return ReadStats{
		Stall:      s.Messages.Stall.Load(),
		Loaded:     s.Messages.Loaded.Load(),
		Skipped:    s.Messages.Skipped.Load(),
		Read:       s.Messages.Read.Load(),
		BytesRead:  s.BytesRead.Load(),
		TotalBytes: s.TotalBytes.Load(),
	}
}

// Progress is the consumed fraction of the buffer in [0, 1].
func (s ReadStats) Progress() float64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return float64(s.BytesRead) / float64(s.TotalBytes)
}
