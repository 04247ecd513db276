package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorTo(t *testing.T) {
	testCases := []struct {
		name     string
		in       time.Time
		interval time.Duration
		expected time.Time
	}{
		{
			name:     "inside a slot",
			in:       time.Date(2019, 1, 30, 10, 22, 41, 500, time.UTC),
			interval: 15 * time.Minute,
			expected: time.Date(2019, 1, 30, 10, 15, 0, 0, time.UTC),
		},
		{
			name:     "on a boundary",
			in:       time.Date(2019, 1, 30, 10, 30, 0, 0, time.UTC),
			interval: 15 * time.Minute,
			expected: time.Date(2019, 1, 30, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "zero interval drops nanoseconds only",
			in:       time.Date(2019, 1, 30, 10, 30, 7, 9, time.UTC),
			interval: 0,
			expected: time.Date(2019, 1, 30, 10, 30, 7, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.expected.Equal(FloorTo(tc.in, tc.interval)))
		})
	}
}

func TestISOExtended(t *testing.T) {
	in := time.Date(2019, 1, 30, 9, 45, 0, 0, time.UTC)

	s := FormatISOExtended(in)
	assert.Equal(t, "2019-01-30T09:45:00", s)

	out, err := ParseISOExtended(s)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))

	_, err = ParseISOExtended("not-a-time")
	assert.Error(t, err)
}

func TestTradingDayFromFileName(t *testing.T) {
	day, err := TradingDayFromFileName("/data/01302019.NASDAQ_ITCH50", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 1, 30, 0, 0, 0, 0, time.UTC), day)

	_, err = TradingDayFromFileName("feed.bin", time.UTC)
	assert.Error(t, err)
}

func TestContextValues(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	assert.NotEmpty(t, GetRequestID(ctx))

	ctx = WithRunID(ctx, "run-1")
	ctx = WithSymbol(ctx, "aapl")

	fields := (&FieldsFromContext{}).Fields(ctx)
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, "aapl", fields["symbol"])
	assert.NotContains(t, fields, "feed_file")
}
