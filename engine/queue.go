package engine

import (
	"container/list"

	"github.com/google/uuid"
)

// OrderQueue is an insertion-ordered keyed container of live orders at one
// price level. It supports O(1) append, peek-first, pop-first, and
// pop-by-id, preserving the relative order of all remaining entries across
// arbitrary interleavings of append and pop(id) — the property that makes
// cancelling a middle order not perturb FIFO for the rest.
type OrderQueue struct {
	orders *list.List
	index  map[uuid.UUID]*list.Element
}

func newOrderQueue() *OrderQueue {
	return &OrderQueue{
		orders: list.New(),
		index:  make(map[uuid.UUID]*list.Element),
	}
}

// Append adds order to the back of the queue. order.ID must not already be
// present; a caller that violates this has a programming error.
func (q *OrderQueue) Append(o *Order) {
	if _, exists := q.index[o.ID]; exists {
		panic("engine: duplicate order id appended to queue: " + o.ID.String())
	}
	el := q.orders.PushBack(o)
	q.index[o.ID] = el
}

// Peek returns the oldest live order without removing it.
func (q *OrderQueue) Peek() (*Order, error) {
	front := q.orders.Front()
	if front == nil {
		return nil, ErrEmpty
	}
	return front.Value.(*Order), nil
}

// PopFront removes and returns the oldest live order.
func (q *OrderQueue) PopFront() (*Order, error) {
	front := q.orders.Front()
	if front == nil {
		return nil, ErrEmpty
	}
	o := front.Value.(*Order)
	q.orders.Remove(front)
	delete(q.index, o.ID)
	return o, nil
}

// Pop removes the order with the given id, preserving the relative order of
// the remaining entries.
func (q *OrderQueue) Pop(id uuid.UUID) (*Order, error) {
	el, ok := q.index[id]
	if !ok {
		return nil, newNotFound(id)
	}
	o := el.Value.(*Order)
	q.orders.Remove(el)
	delete(q.index, id)
	return o, nil
}

// Len returns the number of live orders in the queue.
func (q *OrderQueue) Len() int {
	return q.orders.Len()
}

// Contains reports whether id is currently queued.
func (q *OrderQueue) Contains(id uuid.UUID) bool {
	_, ok := q.index[id]
	return ok
}

// Iter returns the live orders in insertion order. The returned slice is a
// snapshot; mutating the queue afterward does not affect it.
func (q *OrderQueue) Iter() []*Order {
	out := make([]*Order, 0, q.orders.Len())
	for el := q.orders.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Order))
	}
	return out
}
