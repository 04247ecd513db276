package util

import (
	"fmt"
	"path/filepath"
	"time"
)

// ISOExtendedLayout is the second-resolution UTC layout used in storage keys.
const ISOExtendedLayout = "2006-01-02T15:04:05"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FloorTo truncates t to a multiple of interval since the Unix epoch.
// Sub-second precision is dropped.
func FloorTo(t time.Time, interval time.Duration) time.Time {
	sec := t.Unix()
	step := int64(interval / time.Second)
	if step <= 0 {
		return time.Unix(sec, 0).In(t.Location())
	}
	return time.Unix(sec-sec%step, 0).In(t.Location())
}

// FormatISOExtended formats t in UTC as YYYY-MM-DDTHH:MM:SS.
func FormatISOExtended(t time.Time) string {
	return t.UTC().Format(ISOExtendedLayout)
}

// ParseISOExtended parses a UTC YYYY-MM-DDTHH:MM:SS string. A trailing "Z" is accepted.
func ParseISOExtended(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(ISOExtendedLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// TradingDayFromFileName extracts the session date from a NASDAQ feed file name such as
// "01302019.NASDAQ_ITCH50" (MMDDYYYY prefix).
func TradingDayFromFileName(path string, loc *time.Location) (time.Time, error) {
	base := filepath.Base(path)
	if len(base) < 8 {
		return time.Time{}, fmt.Errorf("file name %q has no MMDDYYYY prefix", base)
	}
	day, err := time.ParseInLocation("01022006", base[:8], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("file name %q has no MMDDYYYY prefix: %w", base, err)
	}
	return day, nil
}
