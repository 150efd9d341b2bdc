package audit

import (
	"context"

	"github.com/estore-labs/electrostore/internal/domain/catalog"
	"github.com/estore-labs/electrostore/internal/domain/event"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/observability/logctx"
)

const workerService = "stock-audit"

// Worker consumes stock movement events from the bus and turns them into an
// audit log line plus a stock_movements_total sample. It never affects the
// operations that produced the events.
type Worker struct {
	subscriber event.Subscriber
	log        observability.Logger
	movements  observability.Counter
}

func New(subscriber event.Subscriber, tel observability.Observability) *Worker {
	baseLog := observability.NopLogger()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		metricsProvider = tel.Metrics()
	}
	return &Worker{
		subscriber: subscriber,
		log:        baseLog.With(observability.F("service", workerService)),
		movements:  metricsProvider.Counter(observability.MStockMovements),
	}
}

func (w *Worker) Start() {
	if w.subscriber == nil {
		return
	}
	w.subscriber.Subscribe(catalog.StockDecrementedEvent{}.EventName(), w.handle)
	w.subscriber.Subscribe(catalog.StockIncrementedEvent{}.EventName(), w.handle)
}

func (w *Worker) handle(ctx context.Context, e event.Event) error {
	var (
		direction string
		productID string
		quantity  int
		remaining int
	)
	switch evt := e.(type) {
	case catalog.StockDecrementedEvent:
		direction, productID, quantity, remaining = "out", evt.ProductID, evt.Quantity, evt.Remaining
	case catalog.StockIncrementedEvent:
		direction, productID, quantity, remaining = "in", evt.ProductID, evt.Quantity, evt.Remaining
	default:
		return nil
	}

	w.movements.Add(1,
		observability.L("direction", direction),
	)
	logctx.FromOr(ctx, w.log).Info("stock_movement",
		observability.F("direction", direction),
		observability.F("product_id", productID),
		observability.F("quantity", quantity),
		observability.F("remaining", remaining),
	)
	return nil
}
