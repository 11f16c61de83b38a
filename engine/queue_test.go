package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBid(t *testing.T, symbol string, price int64, qty int64) *Order {
	t.Helper()
	o, err := BidOrder(symbol, decimal.NewFromInt(price), qty)
	require.NoError(t, err)
	return o
}

func TestOrderQueuePeekAndPopFrontEmpty(t *testing.T) {
	q := newOrderQueue()
	_, err := q.Peek()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = q.PopFront()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestOrderQueueFIFO(t *testing.T) {
	q := newOrderQueue()
	a := mustBid(t, "AAPL", 100, 10)
	b := mustBid(t, "AAPL", 100, 20)
	c := mustBid(t, "AAPL", 100, 30)

	q.Append(a)
	q.Append(b)
	q.Append(c)

	assert.Equal(t, 3, q.Len())

	peeked, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, a.ID, peeked.ID)

	front, err := q.PopFront()
	require.NoError(t, err)
	assert.Equal(t, a.ID, front.ID)
	assert.Equal(t, 2, q.Len())

	ids := q.Iter()
	require.Len(t, ids, 2)
	assert.Equal(t, b.ID, ids[0].ID)
	assert.Equal(t, c.ID, ids[1].ID)
}

func TestOrderQueuePopByIDPreservesOrder(t *testing.T) {
	q := newOrderQueue()
	a := mustBid(t, "AAPL", 100, 10)
	b := mustBid(t, "AAPL", 100, 20)
	c := mustBid(t, "AAPL", 100, 30)

	q.Append(a)
	q.Append(b)
	q.Append(c)

	popped, err := q.Pop(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, popped.ID)

	remaining := q.Iter()
	require.Len(t, remaining, 2)
	assert.Equal(t, a.ID, remaining[0].ID)
	assert.Equal(t, c.ID, remaining[1].ID)
	assert.False(t, q.Contains(b.ID))
}

func TestOrderQueuePopUnknownID(t *testing.T) {
	q := newOrderQueue()
	a := mustBid(t, "AAPL", 100, 10)
	q.Append(a)

	_, err := q.Pop(mustBid(t, "AAPL", 100, 1).ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderQueueDuplicateAppendPanics(t *testing.T) {
	q := newOrderQueue()
	a := mustBid(t, "AAPL", 100, 10)
	q.Append(a)

	assert.Panics(t, func() { q.Append(a) })
}
