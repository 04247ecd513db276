package enginev1

import "slices"

// Engine rebuilds one security's book from order events. It is not safe for
// concurrent use; the caller owns ordering.
type Engine struct {
	buy  OrderMap
	sell OrderMap
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{
		buy:  make(OrderMap),
		sell: make(OrderMap),
	}
}

// Reserve pre-sizes both sides ahead of a bulk replay.
func (e *Engine) Reserve(n int) {
	e.buy = grow(e.buy, n)
	e.sell = grow(e.sell, n)
}

func grow(m OrderMap, n int) OrderMap {
	if n <= len(m) {
		return m
	}
	out := make(OrderMap, n)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Reset drops every resting order.
func (e *Engine) Reset() {
	clear(e.buy)
	clear(e.sell)
}

// Apply applies rec and reports whether it took effect. Execute, cancel,
// delete and replace report false when the reference is unknown; unknown
// event types report false without touching the book.
func (e *Engine) Apply(rec OrderRecord) bool {
	switch rec.OrderType {
	case TypeAdd, TypeAddWithAttribution:
		e.add(rec)
		return true
	case TypeExecuted, TypeExecutedWithPrice, TypeCancel:
		return e.reduce(rec.Reference, rec.Shares)
	case TypeDelete:
		return e.remove(rec.Reference)
	case TypeReplace:
		return e.replace(rec)
	default:
		return false
	}
}

// add overwrites on a reference collision.
func (e *Engine) add(rec OrderRecord) {
	order := Order{Price: ToFixed(rec.Price), Shares: rec.Shares}
	if rec.IsBuy {
		e.buy[rec.Reference] = order
		return
	}
	e.sell[rec.Reference] = order
}

func (e *Engine) reduce(ref uint64, shares uint32) bool {
	for _, side := range [...]OrderMap{e.buy, e.sell} {
		order, ok := side[ref]
		if !ok {
			continue
		}
		// Wraps like the feed's unsigned arithmetic when over-executed.
		order.Shares -= shares
		if order.Shares == 0 {
			delete(side, ref)
		} else {
			side[ref] = order
		}
		return true
	}
	return false
}

func (e *Engine) remove(ref uint64) bool {
	for _, side := range [...]OrderMap{e.buy, e.sell} {
		if _, ok := side[ref]; ok {
			delete(side, ref)
			return true
		}
	}
	return false
}

func (e *Engine) replace(rec OrderRecord) bool {
	for _, side := range [...]OrderMap{e.buy, e.sell} {
		if _, ok := side[rec.Reference]; ok {
			delete(side, rec.Reference)
			side[rec.NewReference] = Order{Price: ToFixed(rec.Price), Shares: rec.Shares}
			return true
		}
	}
	return false
}

// Lookup finds a resting order by reference.
func (e *Engine) Lookup(ref uint64) (Order, Side, bool) {
	if o, ok := e.buy[ref]; ok {
		return o, SideBuy, true
	}
	if o, ok := e.sell[ref]; ok {
		return o, SideSell, true
	}
	return Order{}, SideNone, false
}

// Len returns the number of resting orders per side.
func (e *Engine) Len() (buy, sell int) {
	return len(e.buy), len(e.sell)
}

// BuyBook materializes the buy side.
func (e *Engine) BuyBook() OrderBook {
	return materialize(e.buy)
}

// SellBook materializes the sell side.
func (e *Engine) SellBook() OrderBook {
	return materialize(e.sell)
}

func materialize(m OrderMap) OrderBook {
	book := make(OrderBook, 0, len(m))
	for ref, o := range m {
		book = append(book, BookEntry{Order: o, Reference: ref})
	}
	slices.SortFunc(book, func(a, b BookEntry) int {
		if c := a.Order.Compare(b.Order); c != 0 {
			return c
		}
		switch {
		case a.Reference < b.Reference:
			return -1
		case a.Reference > b.Reference:
			return 1
		}
		return 0
	})
	return book
}

// CollapseBook merges adjacent equal prices in one pass. book must be sorted
// by price, as BuyBook and SellBook return it.
func CollapseBook(book OrderBook) CollapsedBook {
	if len(book) == 0 {
		return CollapsedBook{}
	}

	levels := CollapsedBook{{Price: book[0].Price, Shares: uint64(book[0].Shares)}}
	for _, entry := range book[1:] {
		last := &levels[len(levels)-1]
		if entry.Price == last.Price {
			last.Shares += uint64(entry.Shares)
			continue
		}
		levels = append(levels, PriceLevel{Price: entry.Price, Shares: uint64(entry.Shares)})
	}
	return levels
}
