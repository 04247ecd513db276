package ordereventv1

import (
	"time"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
)

// TableSuffix is appended to a symbol to name its event table.
const TableSuffix = "_orders"

// TableName returns the event table for a symbol, e.g. "aapl_orders".
func TableName(stock string) string {
	return stock + TableSuffix
}

// Event is one persisted order lifecycle event.
type Event struct {
	Timestamp time.Time
	// Seq is the feed position of the event; it breaks timestamp ties.
	Seq uint64
	// Type is the ITCH message code (A F E C X D U).
	Type      byte
	Reference uint64
	// OriginalReference and NewReference are only set for replaces.
	OriginalReference uint64
	NewReference      uint64
	IsBuy             bool
	Shares            uint32
	Price             float64
}

// NewEvent builds an event from an engine record.
func NewEvent(ts time.Time, seq uint64, rec enginev1.OrderRecord) Event {
	ev := Event{
		Timestamp: ts,
		Seq:       seq,
		Type:      rec.OrderType,
		Reference: rec.Reference,
		IsBuy:     rec.IsBuy,
		Shares:    rec.Shares,
		Price:     rec.Price,
	}
	if rec.OrderType == enginev1.TypeReplace {
		ev.Reference = 0
		ev.OriginalReference = rec.Reference
		ev.NewReference = rec.NewReference
	}
	return ev
}

// IsReplace reports whether the event is a replace.
func (e Event) IsReplace() bool {
	return e.Type == enginev1.TypeReplace
}

// Record converts the event back into an engine record.
func (e Event) Record() enginev1.OrderRecord {
	rec := enginev1.OrderRecord{
		OrderType: e.Type,
		Reference: e.Reference,
		Shares:    e.Shares,
		Price:     e.Price,
		IsBuy:     e.IsBuy,
	}
	if e.IsReplace() {
		rec.Reference = e.OriginalReference
		rec.NewReference = e.NewReference
	}
	return rec
}

// WriteStatus accumulates event-log writer counters.
type WriteStatus struct {
	Errors        uint64
	Unmatched     uint64
	TablesCreated uint64
	RowsWritten   uint64
	BytesWritten  uint64
}
