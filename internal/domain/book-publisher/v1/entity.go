package bookpublisherv1

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
)

// Level is one published book row. Reference is zero for collapsed books.
type Level struct {
	Price     decimal.Decimal `json:"price"`
	Shares    uint64          `json:"shares"`
	Reference uint64          `json:"reference,omitempty"`
}

// BookEvent is a materialized book at a point in time.
type BookEvent struct {
	ID          string    `json:"id"`
	Stock       string    `json:"stock"`
	At          time.Time `json:"at"`
	Collapsed   bool      `json:"collapsed"`
	Bids        []Level   `json:"bids"`
	Asks        []Level   `json:"asks"`
	Processed   uint64    `json:"processed"`
	Missed      uint64    `json:"missed"`
	PublishedAt time.Time `json:"publishedAt"`
}

// NewBookEvent materializes the engine's books. Levels are listed best price
// first: bids descending, asks ascending.
func NewBookEvent(stock string, at time.Time, engine *enginev1.Engine, collapsed bool) *BookEvent {
	ev := &BookEvent{
		ID:        ulid.Make().String(),
		Stock:     stock,
		At:        at,
		Collapsed: collapsed,
	}

	if collapsed {
		ev.Bids = levelsFromCollapsed(enginev1.CollapseBook(engine.BuyBook()))
		ev.Asks = levelsFromCollapsed(enginev1.CollapseBook(engine.SellBook()))
	} else {
		ev.Bids = levelsFromBook(engine.BuyBook())
		ev.Asks = levelsFromBook(engine.SellBook())
	}
	reverse(ev.Bids)

	return ev
}

func price(p uint32) decimal.Decimal {
	return decimal.NewFromFloat(enginev1.FromFixed(p))
}

func levelsFromBook(book enginev1.OrderBook) []Level {
	levels := make([]Level, 0, len(book))
	for _, e := range book {
		levels = append(levels, Level{Price: price(e.Price), Shares: uint64(e.Shares), Reference: e.Reference})
	}
	return levels
}

func levelsFromCollapsed(book enginev1.CollapsedBook) []Level {
	levels := make([]Level, 0, len(book))
	for _, l := range book {
		levels = append(levels, Level{Price: price(l.Price), Shares: l.Shares})
	}
	return levels
}

func reverse(levels []Level) {
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
}

// ToBytes encodes the event as JSON.
func ToBytes(ev *BookEvent) ([]byte, error) {
	return json.Marshal(ev)
}

// FromBytes decodes a JSON event.
func FromBytes(data []byte) (*BookEvent, error) {
	var ev BookEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
