package stock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/estore-labs/electrostore/internal/domain/catalog"
	"github.com/estore-labs/electrostore/internal/domain/event"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/observability/logctx"
)

const (
	ledgerService    = "stock-ledger"
	useCaseDecrement = "stock.decrement"
	useCaseIncrement = "stock.increment"
	spanPrefix       = "UC."
)

// Ledger owns the authoritative stock count per product and serializes its
// mutation with one mutex per product id. Operations on distinct products run
// fully in parallel; no operation ever holds two guards, so lock ordering is
// not a concern. Each Ledger owns its guard registry; instances never share
// guards implicitly.
type Ledger struct {
	products  catalog.Repository
	publisher event.Publisher

	mu     sync.Mutex
	guards map[string]*sync.Mutex

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewLedger(products catalog.Repository, publisher event.Publisher, tel observability.Observability) *Ledger {
	baseLog := observability.NopLogger()
	tracer := observability.NopTracer()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		tracer = tel.Tracer()
		metricsProvider = tel.Metrics()
	}
	return &Ledger{
		products:     products,
		publisher:    publisher,
		guards:       make(map[string]*sync.Mutex),
		log:          baseLog.With(observability.F("service", ledgerService)),
		tracer:       tracer,
		reqCounter:   metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram: metricsProvider.Histogram(observability.MUsecaseDuration),
	}
}

// guard returns the mutex for the product id, creating it atomically on first
// use. Both Increment and Decrement go through here: a guard created lazily on
// only one path would leave the other unsynchronized for products whose stock
// was only ever mutated through that path.
func (l *Ledger) guard(productID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	g, ok := l.guards[productID]
	if !ok {
		g = &sync.Mutex{}
		l.guards[productID] = g
	}
	return g
}

// Decrement removes quantity units of the product's stock. It fails with
// catalog.ErrNotFound for unknown products and with a
// catalog.InsufficientStockError when the stock does not cover the request,
// leaving the stored count untouched. The read-check-persist sequence runs
// entirely under the product's guard; no partial write is ever visible.
func (l *Ledger) Decrement(ctx context.Context, productID string, quantity int) (err error) {
	ctx, span := l.tracer.Start(ctx, spanPrefix+"StockDecrement",
		attribute.String("use_case", useCaseDecrement),
		attribute.String("product.id", productID),
		attribute.Int("stock.quantity", quantity),
	)
	start := time.Now()
	defer func() { l.finish(ctx, span, useCaseDecrement, productID, quantity, start, err) }()

	if quantity <= 0 {
		return fmt.Errorf("stock: decrement: %w", catalog.ErrInvalidQuantity)
	}

	guard := l.guard(productID)
	guard.Lock()
	defer guard.Unlock()

	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("stock: decrement: %w", err)
	}
	if err := product.DecrementStock(quantity); err != nil {
		return fmt.Errorf("stock: decrement: %w", err)
	}
	if err := l.products.Save(ctx, product); err != nil {
		return fmt.Errorf("stock: decrement: save: %w", err)
	}

	span.AddEvent("stock.decremented",
		trace.WithAttributes(attribute.Int("stock.remaining", product.Stock)),
	)
	l.publish(ctx, catalog.NewStockDecrementedEvent(productID, quantity, product.Stock))
	return nil
}

// Increment restores quantity units of the product's stock under the same
// guard Decrement uses. It fails with catalog.ErrNotFound for unknown
// products; restoring stock has no upper bound check.
func (l *Ledger) Increment(ctx context.Context, productID string, quantity int) (err error) {
	ctx, span := l.tracer.Start(ctx, spanPrefix+"StockIncrement",
		attribute.String("use_case", useCaseIncrement),
		attribute.String("product.id", productID),
		attribute.Int("stock.quantity", quantity),
	)
	start := time.Now()
	defer func() { l.finish(ctx, span, useCaseIncrement, productID, quantity, start, err) }()

	if quantity <= 0 {
		return fmt.Errorf("stock: increment: %w", catalog.ErrInvalidQuantity)
	}

	guard := l.guard(productID)
	guard.Lock()
	defer guard.Unlock()

	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("stock: increment: %w", err)
	}
	if err := product.IncrementStock(quantity); err != nil {
		return fmt.Errorf("stock: increment: %w", err)
	}
	if err := l.products.Save(ctx, product); err != nil {
		return fmt.Errorf("stock: increment: save: %w", err)
	}

	l.publish(ctx, catalog.NewStockIncrementedEvent(productID, quantity, product.Stock))
	return nil
}

// FindStock returns the current stock count, or catalog.ErrNotFound.
func (l *Ledger) FindStock(ctx context.Context, productID string) (int, error) {
	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("stock: find: %w", err)
	}
	return product.Stock, nil
}

// publish is best-effort: the stock mutation has already been persisted, and
// the movement feed must not turn a committed mutation into a failure.
func (l *Ledger) publish(ctx context.Context, e event.Event) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, e); err != nil {
		logctx.FromOr(ctx, l.log).Warn("stock_event_publish_failed",
			observability.F("event", e.EventName()),
			observability.F("error", err.Error()),
		)
	}
}

func (l *Ledger) finish(ctx context.Context, span trace.Span, useCase, productID string, quantity int, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, useCase)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()

	latency := time.Since(start).Seconds()
	l.reqCounter.Add(1,
		observability.L("use_case", useCase),
		observability.L("outcome", outcome),
	)
	l.durHistogram.Observe(latency,
		observability.L("use_case", useCase),
	)

	fields := []observability.Field{
		observability.F("use_case", useCase),
		observability.F("product_id", productID),
		observability.F("quantity", quantity),
		observability.F("outcome", outcome),
		observability.F("latency_seconds", latency),
	}
	if err != nil {
		fields = append(fields, observability.F("error", err.Error()))
	}
	logctx.FromOr(ctx, l.log).Info("use_case_done", fields...)
}
