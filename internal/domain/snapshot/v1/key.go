package snapshotv1

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/util"
)

// DefaultInterval is the snapshot granularity.
const DefaultInterval = 15 * time.Minute

const keyInfix = "_orders_snap_"

// KeyPrefix is the prefix shared by every snapshot of a symbol.
func KeyPrefix(stock string) string {
	return stock + keyInfix
}

// Key names the snapshot of stock taken at instant at, which must already be
// on an interval boundary. Keys are "{stock}_orders_snap_{YYYY-MM-DDTHH:MM:SS}" in UTC.
func Key(stock string, at time.Time) string {
	return KeyPrefix(stock) + util.FormatISOExtended(at)
}

// KeyFor floors at to interval and names the snapshot for it.
func KeyFor(stock string, at time.Time, interval time.Duration) string {
	return Key(stock, util.FloorTo(at, interval))
}

// DayPrefixes returns the key prefixes covering [from, to], one per UTC date.
func DayPrefixes(stock string, from, to time.Time) []string {
	from, to = from.UTC(), to.UTC()
	if to.Before(from) {
		return nil
	}

	var prefixes []string
	for day := util.StartOfDay(from); !day.After(to); day = day.AddDate(0, 0, 1) {
		prefixes = append(prefixes, KeyPrefix(stock)+day.Format("2006-01-02")+"T")
	}
	return prefixes
}

// ParseKeyTime extracts the instant encoded after the last '_' of key.
func ParseKeyTime(key string) (time.Time, error) {
	i := strings.LastIndexByte(key, '_')
	if i < 0 || i == len(key)-1 {
		return time.Time{}, fmt.Errorf("snapshot key %q has no timestamp", key)
	}
	t, err := util.ParseISOExtended(key[i+1:])
	if err != nil {
		return time.Time{}, fmt.Errorf("snapshot key %q: %w", key, err)
	}
	return t, nil
}

// SelectLatest returns the greatest key not after best. Keys of one symbol
// order lexically by time.
func SelectLatest(keys []string, best string) (string, bool) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	i := sort.SearchStrings(sorted, best)
	if i < len(sorted) && sorted[i] == best {
		return best, true
	}
	if i == 0 {
		return "", false
	}
	return sorted[i-1], true
}
