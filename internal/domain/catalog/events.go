package catalog

import "time"

// StockDecrementedEvent is emitted after stock has been removed for a product.
type StockDecrementedEvent struct {
	ProductID  string
	Quantity   int
	Remaining  int
	OccurredAt time.Time
}

func (StockDecrementedEvent) EventName() string { return "stock.decremented" }

func NewStockDecrementedEvent(productID string, quantity, remaining int) StockDecrementedEvent {
	return StockDecrementedEvent{
		ProductID:  productID,
		Quantity:   quantity,
		Remaining:  remaining,
		OccurredAt: time.Now().UTC(),
	}
}

// StockIncrementedEvent is emitted after stock has been restored for a product.
type StockIncrementedEvent struct {
	ProductID  string
	Quantity   int
	Remaining  int
	OccurredAt time.Time
}

func (StockIncrementedEvent) EventName() string { return "stock.incremented" }

func NewStockIncrementedEvent(productID string, quantity, remaining int) StockIncrementedEvent {
	return StockIncrementedEvent{
		ProductID:  productID,
		Quantity:   quantity,
		Remaining:  remaining,
		OccurredAt: time.Now().UTC(),
	}
}
