package bookpublisherv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
)

func TestNewBookEvent(t *testing.T) {
	e := enginev1.NewEngine()
	e.Apply(enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: 1, IsBuy: true, Shares: 100, Price: 10.5})
	e.Apply(enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: 2, IsBuy: true, Shares: 50, Price: 10.5})
	e.Apply(enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: 3, IsBuy: true, Shares: 10, Price: 10.25})
	e.Apply(enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: 4, IsBuy: false, Shares: 5, Price: 11})

	at := time.Date(2019, 1, 30, 14, 30, 0, 0, time.UTC)

	detailed := NewBookEvent("aapl", at, e, false)
	assert.Len(t, detailed.ID, 26)
	require.Len(t, detailed.Bids, 3)
	assert.Equal(t, uint64(1), detailed.Bids[0].Reference)
	assert.Equal(t, "10.5", detailed.Bids[0].Price.String())
	assert.Equal(t, "10.25", detailed.Bids[2].Price.String())
	require.Len(t, detailed.Asks, 1)
	assert.Equal(t, "11", detailed.Asks[0].Price.String())

	collapsed := NewBookEvent("aapl", at, e, true)
	require.Len(t, collapsed.Bids, 2)
	assert.Equal(t, uint64(150), collapsed.Bids[0].Shares)
	assert.Zero(t, collapsed.Bids[0].Reference)
	assert.NotEqual(t, detailed.ID, collapsed.ID)

	data, err := ToBytes(collapsed)
	require.NoError(t, err)
	decoded, err := FromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, collapsed.ID, decoded.ID)
	assert.True(t, decoded.Bids[0].Price.Equal(collapsed.Bids[0].Price))

	_, err = FromBytes([]byte("{"))
	assert.Error(t, err)
}
