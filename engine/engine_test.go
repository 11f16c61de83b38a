package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineSubmitPublishesTradesAndStats(t *testing.T) {
	e := NewEngine()

	resting, _ := AskOrder("AAPL", d("150"), 50)
	_, err := e.Submit(resting)
	require.NoError(t, err)

	aggressor, _ := BidOrder("AAPL", d("150"), 50)
	blotter, err := e.Submit(aggressor)
	require.NoError(t, err)
	require.Len(t, blotter.Trades, 1)

	select {
	case tr := <-e.TradeStream:
		assert.Equal(t, int64(50), tr.FillQuantity)
	default:
		t.Fatal("expected a trade on TradeStream")
	}

	stats, ok := e.Stats("AAPL")
	require.True(t, ok)
	assert.Equal(t, int64(1), stats.TradeCount)
	assert.Equal(t, int64(50), stats.VolumeTotal)
}

func TestEngineStatsAbsentForUntouchedSymbol(t *testing.T) {
	e := NewEngine()
	_, ok := e.Stats("NOPE")
	assert.False(t, ok)
}
