// Package replay drives an engine.Book from a columnar on-disk table: the
// same replay/ingest workflow the matching engine's Python ancestor
// exercised with sample Parquet data, reimplemented against parquet-go.
package replay

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"

	"github.com/mkhoshkam/matchbook/engine"
)

// Row is one record of the columnar order table: side, symbol, price,
// quantity. Side must be "bid" or "ask"; price must be positive; quantity
// must be a positive integer.
type Row struct {
	Side     string  `parquet:"side"`
	Symbol   string  `parquet:"symbol"`
	Price    float64 `parquet:"price"`
	Quantity int64   `parquet:"quantity"`
}

// RowError wraps engine.ErrInvalidInput with the offending row index.
type RowError struct {
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("replay: row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func (r Row) toOrder() (*engine.Order, error) {
	price := decimal.NewFromFloat(r.Price)
	var order *engine.Order
	var err error
	switch r.Side {
	case "bid":
		order, err = engine.BidOrder(r.Symbol, price, r.Quantity)
	case "ask":
		order, err = engine.AskOrder(r.Symbol, price, r.Quantity)
	default:
		return nil, fmt.Errorf("side must be \"bid\" or \"ask\", got %q: %w", r.Side, engine.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
	}
	return order, nil
}

// ReadRows decodes every row of a Parquet file at path into Rows.
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := parquet.NewGenericReader[Row](f)
	defer reader.Close()

	rows := make([]Row, reader.NumRows())
	if len(rows) == 0 {
		return nil, nil
	}

	n, err := reader.Read(rows)
	if err != nil && n < len(rows) {
		return nil, err
	}
	return rows[:n], nil
}

// Replay feeds each row through book.Match as an incoming order, in file
// order, and returns the list of resulting Blotters. A malformed row
// aborts and returns a *RowError wrapping engine.ErrInvalidInput.
func Replay(book *engine.Book, rows []Row) ([]engine.Blotter, error) {
	blotters := make([]engine.Blotter, 0, len(rows))
	for i, row := range rows {
		order, err := row.toOrder()
		if err != nil {
			return blotters, &RowError{Index: i, Err: err}
		}
		blotter, err := book.Match(order)
		if err != nil {
			return blotters, &RowError{Index: i, Err: err}
		}
		blotters = append(blotters, blotter)
	}
	return blotters, nil
}

// Ingest enqueues each row directly as a standing order (no matching) and
// returns the number of rows ingested. A malformed row aborts and returns
// a *RowError wrapping engine.ErrInvalidInput.
func Ingest(book *engine.Book, rows []Row) (int, error) {
	for i, row := range rows {
		order, err := row.toOrder()
		if err != nil {
			return i, &RowError{Index: i, Err: err}
		}
		if err := book.EnqueueOrder(order); err != nil {
			return i, &RowError{Index: i, Err: err}
		}
	}
	return len(rows), nil
}

// NewBookFromIngestFile reads path as a Parquet table and ingests every row
// directly into a fresh Book, returning it pre-populated.
func NewBookFromIngestFile(path string, opts ...engine.Option) (*engine.Book, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}
	book := engine.NewBook(opts...)
	if _, err := Ingest(book, rows); err != nil {
		return nil, err
	}
	return book, nil
}
