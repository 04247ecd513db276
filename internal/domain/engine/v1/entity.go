package enginev1

import "cmp"

// PriceScale is the engine's fixed-point multiplier.
const PriceScale = 1000

// ToFixed re-encodes a decoded price into the engine's fixed point. The wire
// carries four decimals; this keeps three, truncating the rest.
func ToFixed(p float64) uint32 {
	return uint32(p * PriceScale)
}

// FromFixed converts an engine price back to a decimal value.
func FromFixed(p uint32) float64 {
	return float64(p) / PriceScale
}

// Side is the book side an order rests on.
type Side uint8

const (
	SideNone Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "none"
	}
}

// Order is a resting order.
type Order struct {
	Price  uint32
	Shares uint32
}

// Compare orders by price, then shares.
func (o Order) Compare(other Order) int {
	if c := cmp.Compare(o.Price, other.Price); c != 0 {
		return c
	}
	return cmp.Compare(o.Shares, other.Shares)
}

// OrderMap keys resting orders by reference number.
type OrderMap map[uint64]Order

// Order event types understood by Apply.
const (
	TypeAdd                byte = 'A'
	TypeAddWithAttribution byte = 'F'
	TypeExecuted           byte = 'E'
	TypeExecutedWithPrice  byte = 'C'
	TypeCancel             byte = 'X'
	TypeDelete             byte = 'D'
	TypeReplace            byte = 'U'
)

// OrderRecord is one order lifecycle event.
type OrderRecord struct {
	OrderType    byte
	Reference    uint64
	NewReference uint64
	Shares       uint32
	Price        float64
	IsBuy        bool
}

// BookEntry is one row of a materialized book.
type BookEntry struct {
	Order
	Reference uint64
}

// OrderBook is sorted ascending by price, shares, then reference.
type OrderBook []BookEntry

// PriceLevel aggregates every order at one price.
type PriceLevel struct {
	Price  uint32
	Shares uint64
}

// CollapsedBook is sorted ascending by price.
type CollapsedBook []PriceLevel

// MaxShares returns the largest share count in the book.
func (b OrderBook) MaxShares() uint64 {
	var m uint64
	for _, e := range b {
		m = max(m, uint64(e.Shares))
	}
	return m
}

// MaxShares returns the largest aggregate share count in the book.
func (b CollapsedBook) MaxShares() uint64 {
	var m uint64
	for _, l := range b {
		m = max(m, l.Shares)
	}
	return m
}
