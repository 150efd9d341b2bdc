package basket

import "context"

type IDGenerator interface {
	NewID() string
}

// StockLedger is the slice of the stock ledger the basket operations depend
// on: guarded, all-or-nothing stock mutation per product.
type StockLedger interface {
	Decrement(ctx context.Context, productID string, quantity int) error
	Increment(ctx context.Context, productID string, quantity int) error
}
