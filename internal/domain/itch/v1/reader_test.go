package itchv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectSink struct {
	msgs    []Message
	rejects int
}

func (s *collectSink) TryPush(msg Message) bool {
	if s.rejects > 0 {
		s.rejects--
		return false
	}
	s.msgs = append(s.msgs, msg)
	return true
}

func TestReader_ReadAll(t *testing.T) {
	unknown := []byte{'Z', 1, 2, 3}
	buf := frame(
		systemEventRecord('O'),
		directoryRecord(1, "AAPL"),
		addOrderRecord(1, SideBuy, 100, "AAPL", 105000),
		unknown,
		executedRecord(1, 40),
	)

	sink := &collectSink{}
	r := NewReader(sink)

	n := r.ReadAll(buf)
	assert.Equal(t, len(buf), n)

	require.Len(t, sink.msgs, 3)
	assert.Equal(t, CodeStockDirectory, sink.msgs[0].Code())
	assert.Equal(t, CodeAddOrder, sink.msgs[1].Code())
	assert.Equal(t, CodeOrderExecuted, sink.msgs[2].Code())

	stats := r.Status().Snapshot()
	assert.Equal(t, uint64(3), stats.Read)
	assert.Equal(t, uint64(2), stats.Skipped)
	assert.Equal(t, uint64(SizeStockDirectory+SizeAddOrder+SizeOrderExecuted), stats.Loaded)
	assert.Equal(t, uint64(0), stats.Stall)
	assert.Equal(t, uint64(len(buf)), stats.BytesRead)
	assert.Equal(t, uint64(len(buf)), stats.TotalBytes)
	assert.Equal(t, 1.0, stats.Progress())
}

func TestReader_WithCodes(t *testing.T) {
	buf := frame(
		addOrderRecord(1, SideBuy, 100, "AAPL", 105000),
		executedRecord(1, 40),
	)

	sink := &collectSink{}
	r := NewReader(sink, WithCodes(CodeAddOrder, CodeEndOfTransmission))
	r.ReadAll(buf)

	require.Len(t, sink.msgs, 1)
	stats := r.Status().Snapshot()
	assert.Equal(t, uint64(1), stats.Read)
	assert.Equal(t, uint64(1), stats.Skipped)
}

func TestReader_Next(t *testing.T) {
	add := addOrderRecord(1, SideBuy, 100, "AAPL", 105000)

	testCases := []struct {
		name     string
		buf      []byte
		wantN    int
		wantOK   bool
		wantRead uint64
	}{
		{name: "empty buffer", buf: nil},
		{name: "single byte prefix", buf: []byte{0}},
		{name: "declared size exceeds buffer", buf: frame(add)[:20]},
		{
			name: "record shorter than message size",
			buf:  frame(add[:SizeAddOrder-4]),
		},
		{
			name:     "complete record",
			buf:      frame(add),
			wantN:    2 + SizeAddOrder,
			wantOK:   true,
			wantRead: 1,
		},
		{
			name:   "zero length record is skipped",
			buf:    []byte{0, 0, 'A'},
			wantN:  2,
			wantOK: true,
		},
		{
			name:     "record longer than message size advances by declared size",
			buf:      frame(append(append([]byte{}, add...), 0xFF, 0xFF)),
			wantN:    2 + SizeAddOrder + 2,
			wantOK:   true,
			wantRead: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(&collectSink{})

			n, ok := r.Next(tc.buf)
			assert.Equal(t, tc.wantN, n)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantRead, r.Status().Snapshot().Read)
		})
	}
}

func TestReader_TruncatedStopsReadAll(t *testing.T) {
	good := frame(addOrderRecord(1, SideBuy, 100, "AAPL", 105000))
	buf := append(append([]byte{}, good...), frame(executedRecord(1, 10))[:10]...)

	sink := &collectSink{}
	r := NewReader(sink)

	assert.Equal(t, len(good), r.ReadAll(buf))
	assert.Len(t, sink.msgs, 1)
}

func TestReader_Stall(t *testing.T) {
	var waits []int
	sink := &collectSink{rejects: 3}
	r := NewReader(sink, WithWait(func(attempt int) { waits = append(waits, attempt) }))

	n, ok := r.Next(frame(addOrderRecord(1, SideBuy, 100, "AAPL", 105000)))
	require.True(t, ok)
	assert.Equal(t, 2+SizeAddOrder, n)

	assert.Equal(t, uint64(3), r.Status().Snapshot().Stall)
	assert.Equal(t, []int{1, 2, 3}, waits)
	assert.Len(t, sink.msgs, 1)
}

func TestBackoff_Wait(t *testing.T) {
	b := &Backoff{SpinLimit: 2}
	for attempt := 1; attempt <= 5; attempt++ {
		b.Wait(attempt)
	}
	assert.Equal(t, uint64(3), b.Yields())
}

func TestReader_StallWithBackoff(t *testing.T) {
	b := &Backoff{SpinLimit: 1}
	sink := &collectSink{rejects: 4}
	r := NewReader(sink, WithWait(b.Wait))

	_, ok := r.Next(frame(addOrderRecord(1, SideBuy, 100, "AAPL", 105000)))
	require.True(t, ok)
	assert.Equal(t, uint64(4), r.Status().Snapshot().Stall)
	assert.Equal(t, uint64(3), b.Yields())
}

func TestReader_DoneAbortsPush(t *testing.T) {
	done := make(chan struct{})
	close(done)

	sink := &collectSink{rejects: 1 << 30}
	r := NewReader(sink, WithDone(done))

	n, ok := r.Next(frame(addOrderRecord(1, SideBuy, 100, "AAPL", 105000)))
	assert.False(t, ok)
	assert.Zero(t, n)

	stats := r.Status().Snapshot()
	assert.Equal(t, uint64(1), stats.Stall)
	assert.Zero(t, stats.Read)
}

func TestSinkFunc(t *testing.T) {
	var got []Message
	r := NewReader(SinkFunc(func(m Message) { got = append(got, m) }))
	r.ReadAll(frame(addOrderRecord(1, SideBuy, 1, "A", 1)))
	assert.Len(t, got, 1)
}

func TestStock_String(t *testing.T) {
	var s Stock
	copy(s[:], "aapl    ")
	assert.Equal(t, "aapl", s.String())
}
