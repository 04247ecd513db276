package printer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/util"
)

// BarWidth is the length of a full depth bar.
const BarWidth = 20

// Printer renders order books as text.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Bar returns a bar of '#' proportional to value/top, full when value >= top.
func Bar(width int, value, top uint64) string {
	if value >= top {
		return strings.Repeat("#", width)
	}
	return strings.Repeat("#", int(float64(width)*float64(value)/float64(top)))
}

// Price formats an engine price with two decimals.
func Price(p uint32) string {
	return decimal.New(int64(p), -3).StringFixed(2)
}

// Summary is the header printed above a book.
type Summary struct {
	Stock       string
	At          time.Time
	SnapshotKey string
	Processed   uint64
	Missed      uint64
	PointInTime bool
}

func (p *Printer) Summary(s Summary) {
	if s.SnapshotKey != "" {
		fmt.Fprintf(p.w, "Used snapshot %s\n", s.SnapshotKey)
	}
	fmt.Fprintf(p.w, "Order book for %s at %s\n", strings.ToUpper(s.Stock), util.FormatISOExtended(s.At))

	pit := "disabled"
	if s.PointInTime {
		pit = "enabled"
	}
	fmt.Fprintf(p.w, "Processed orders %s - missed orders %s - Point In Time: %s\n",
		humanize.Comma(int64(s.Processed)), humanize.Comma(int64(s.Missed)), pit)
}

// Detailed prints every order, sell side first, each side from the highest price down.
func (p *Printer) Detailed(buy, sell enginev1.OrderBook) {
	top := max(buy.MaxShares(), sell.MaxShares())

	fmt.Fprint(p.w, "\nDETAILED ORDER BOOK\n")
	for _, side := range []struct {
		title string
		book  enginev1.OrderBook
	}{{"Selling", sell}, {"Buying", buy}} {
		fmt.Fprintf(p.w, "\n *** %s\n", side.title)
		for i := len(side.book) - 1; i >= 0; i-- {
			e := side.book[i]
			fmt.Fprintf(p.w, " %9s USD - %6s shares - ref: %10s | %s\n",
				Price(e.Price), humanize.Comma(int64(e.Shares)), humanize.Comma(int64(e.Reference)),
				Bar(BarWidth, uint64(e.Shares), top))
		}
	}
}

// Collapsed prints one row per price level.
func (p *Printer) Collapsed(buy, sell enginev1.CollapsedBook) {
	top := max(buy.MaxShares(), sell.MaxShares())

	fmt.Fprint(p.w, "\nCOLLAPSED ORDER BOOK\n")
	for _, side := range []struct {
		title string
		book  enginev1.CollapsedBook
	}{{"Selling", sell}, {"Buying", buy}} {
		fmt.Fprintf(p.w, "\n *** %s\n", side.title)
		for i := len(side.book) - 1; i >= 0; i-- {
			l := side.book[i]
			fmt.Fprintf(p.w, " %9s USD - %6s shares | %s\n",
				Price(l.Price), humanize.Comma(int64(l.Shares)), Bar(BarWidth, l.Shares, top))
		}
	}
}

// Timings are the phases of one query.
type Timings struct {
	Total, Fetch, Engine, Build time.Duration
}

func (p *Printer) Timings(t Timings) {
	fmt.Fprintf(p.w, "\n Total elapsed time: %9s us\n", humanize.Comma(t.Total.Microseconds()))
	fmt.Fprintf(p.w, "      Data transfer: %9s us\n", humanize.Comma(t.Fetch.Microseconds()))
	fmt.Fprintf(p.w, "   Engine execution: %9s us\n", humanize.Comma(t.Engine.Microseconds()))
	fmt.Fprintf(p.w, "      Book building: %9s us\n", humanize.Comma(t.Build.Microseconds()))
}
