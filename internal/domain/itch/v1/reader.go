package itchv1

import (
	"encoding/binary"
	"runtime"
	"sync/atomic"
)

const lengthPrefix = 2

// Sink receives decoded messages. TryPush must not block; it reports false
// when the message could not be accepted yet.
type Sink interface {
	TryPush(msg Message) bool
}

// WaitFunc is called after each failed push; attempt starts at 1.
type WaitFunc func(attempt int)

// DefaultSpinLimit is the number of busy retries before yielding the processor.
const DefaultSpinLimit = 64

// Backoff busy-retries SpinLimit times, then yields the processor on every
// further attempt. Wait is a WaitFunc.
type Backoff struct {
	SpinLimit int

	yields atomic.Uint64
}

// Wait is called after a failed push.
func (b *Backoff) Wait(attempt int) {
	if attempt > b.SpinLimit {
		b.yields.Add(1)
		runtime.Gosched()
	}
}

// Yields is the number of times Wait gave up the processor.
func (b *Backoff) Yields() uint64 {
	return b.yields.Load()
}

// Reader frames length-prefixed ITCH records out of a byte buffer and hands
// the accepted ones to a Sink.
type Reader struct {
	sink     Sink
	status   *ReadStatus
	accepted [256]bool
	wait     WaitFunc
	done     <-chan struct{}
}

// ReaderOption configures a Reader.
type ReaderOption func(r *Reader)

// WithCodes replaces the set of decoded message codes. Codes without a
// decoder in the catalog are ignored.
func WithCodes(codes ...byte) ReaderOption {
	return func(r *Reader) {
		r.accepted = [256]bool{}
		for _, c := range codes {
			if catalog[c].Decodable() {
				r.accepted[c] = true
			}
		}
	}
}

// WithWait sets the backoff used while the sink is full.
func WithWait(wait WaitFunc) ReaderOption {
	return func(r *Reader) {
		r.wait = wait
	}
}

// WithDone stops a blocked push when done is closed. The record being pushed
// is not counted and Next reports false.
func WithDone(done <-chan struct{}) ReaderOption {
	return func(r *Reader) {
		r.done = done
	}
}

// WithStatus shares an externally owned status, e.g. with a progress reporter.
func WithStatus(status *ReadStatus) ReaderOption {
	return func(r *Reader) {
		r.status = status
	}
}

// NewReader creates a Reader that decodes BookCodes by default.
func NewReader(sink Sink, opts ...ReaderOption) *Reader {
	r := &Reader{
		sink:   sink,
		status: &ReadStatus{},
		wait:   (&Backoff{SpinLimit: DefaultSpinLimit}).Wait,
	}
	WithCodes(BookCodes...)(r)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Status returns the live counters.
func (r *Reader) Status() *ReadStatus {
	return r.status
}

// Next frames the record at the start of buf. It returns the number of bytes
// consumed and false when buf holds no complete record, the record is shorter
// than its message's fixed size, or the push was cancelled.
func (r *Reader) Next(buf []byte) (int, bool) {
	if len(buf) < lengthPrefix {
		return 0, false
	}
	size := int(binary.BigEndian.Uint16(buf))
	if len(buf)-lengthPrefix < size {
		return 0, false
	}
	n := lengthPrefix + size
	record := buf[lengthPrefix:n]

	if size == 0 || !r.accepted[record[0]] {
		r.status.Messages.Skipped.Add(1)
		return n, true
	}

	msg := catalog[record[0]].New()
	if !msg.Decode(record) {
		return 0, false
	}

	if !r.push(msg) {
		return 0, false
	}

	r.status.Messages.Loaded.Add(uint64(size))
	r.status.Messages.Read.Add(1)
	return n, true
}

func (r *Reader) push(msg Message) bool {
	for attempt := 1; !r.sink.TryPush(msg); attempt++ {
		r.status.Messages.Stall.Add(1)
		if r.done != nil {
			select {
			case <-r.done:
				return false
			default:
			}
		}
		r.wait(attempt)
	}
	return true
}

// ReadAll frames records until buf is exhausted or a record fails, and
// returns the number of bytes consumed.
func (r *Reader) ReadAll(buf []byte) int {
	r.status.TotalBytes.Store(uint64(len(buf)))

	offset := 0
	for offset < len(buf) {
		n, ok := r.Next(buf[offset:])
		if !ok {
			break
		}
		offset += n
		r.status.BytesRead.Store(uint64(offset))
	}
	return offset
}

// SinkFunc adapts a function to a Sink that always accepts.
type SinkFunc func(msg Message)

// TryPush implements Sink.
func (f SinkFunc) TryPush(msg Message) bool {
	f(msg)
	return true
}
