package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhoshkam/matchbook/engine"
)

func TestRowToOrderRejectsUnknownSide(t *testing.T) {
	row := Row{Side: "buy", Symbol: "AAPL", Price: 10, Quantity: 1}
	_, err := row.toOrder()
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestIngestPopulatesBookWithoutMatching(t *testing.T) {
	book := engine.NewBook()
	rows := []Row{
		{Side: "bid", Symbol: "AAPL", Price: 150, Quantity: 10},
		{Side: "ask", Symbol: "AAPL", Price: 151, Quantity: 20},
	}

	n, err := Ingest(book, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	snap, ok := book.Snapshot("AAPL", 5)
	require.True(t, ok)
	require.Len(t, snap.Bids, 1)
	require.Len(t, snap.Asks, 1)
}

func TestIngestAbortsOnMalformedRow(t *testing.T) {
	book := engine.NewBook()
	rows := []Row{
		{Side: "bid", Symbol: "AAPL", Price: 150, Quantity: 10},
		{Side: "sideways", Symbol: "AAPL", Price: 151, Quantity: 20},
	}

	_, err := Ingest(book, rows)
	require.Error(t, err)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Index)
}

func TestReplayMatchesRowsInOrder(t *testing.T) {
	book := engine.NewBook()
	rows := []Row{
		{Side: "ask", Symbol: "AAPL", Price: 150, Quantity: 100},
		{Side: "bid", Symbol: "AAPL", Price: 150, Quantity: 40},
	}

	blotters, err := Replay(book, rows)
	require.NoError(t, err)
	require.Len(t, blotters, 2)
	assert.Empty(t, blotters[0].Trades)
	require.Len(t, blotters[1].Trades, 1)
	assert.Equal(t, int64(40), blotters[1].Trades[0].FillQuantity)
}

func TestGenerateSampleWriteAndReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample_orders.parquet")

	cfg := DefaultSampleConfig()
	cfg.OrderCount = 20
	rows := GenerateSample(cfg)
	require.Len(t, rows, 20)

	require.NoError(t, WriteRows(path, rows))

	readBack, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, readBack, 20)
	assert.Equal(t, rows[0].Symbol, readBack[0].Symbol)
	assert.Equal(t, rows[0].Side, readBack[0].Side)
}

func TestNewBookFromIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample_orders.parquet")

	rows := []Row{
		{Side: "bid", Symbol: "AAPL", Price: 150, Quantity: 10},
		{Side: "ask", Symbol: "AAPL", Price: 151, Quantity: 20},
	}
	require.NoError(t, WriteRows(path, rows))

	book, err := NewBookFromIngestFile(path)
	require.NoError(t, err)

	snap, ok := book.Snapshot("AAPL", 5)
	require.True(t, ok)
	assert.Len(t, snap.Bids, 1)
	assert.Len(t, snap.Asks, 1)
}
