package basket

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/estore-labs/electrostore/internal/domain/basket"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/observability/logctx"
)

const (
	operationsService = "basket-operations"
	useCaseAdd        = "basket.add_product"
	useCaseRemove     = "basket.remove_product"
	spanPrefix        = "UC."
)

// Operations composes the stock ledger and the basket store. The ordering
// invariant is that the stock-affecting call always precedes the basket
// mutation: a stock failure leaves the basket untouched and needs no
// compensation, while basket mutation after a successful stock step is
// defined to never fail.
type Operations struct {
	store  *Store
	ledger StockLedger

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewOperations(store *Store, ledger StockLedger, tel observability.Observability) *Operations {
	baseLog := observability.NopLogger()
	tracer := observability.NopTracer()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		tracer = tel.Tracer()
		metricsProvider = tel.Metrics()
	}
	return &Operations{
		store:        store,
		ledger:       ledger,
		log:          baseLog.With(observability.F("service", operationsService)),
		tracer:       tracer,
		reqCounter:   metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram: metricsProvider.Histogram(observability.MUsecaseDuration),
	}
}

// AddProduct reserves stock for the product and merges it into the user's
// basket. When the decrement fails (unknown product, insufficient stock) the
// basket has not been touched and the error propagates unchanged.
func (o *Operations) AddProduct(ctx context.Context, userID, productID string, quantity int) (_ *domain.Basket, err error) {
	ctx, span := o.tracer.Start(ctx, spanPrefix+"AddProductToBasket",
		attribute.String("use_case", useCaseAdd),
		attribute.String("product.id", productID),
		attribute.Int("basket.quantity", quantity),
	)
	start := time.Now()
	defer func() { o.finish(ctx, span, useCaseAdd, userID, productID, quantity, start, err) }()

	basket, err := o.store.BasketFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := o.ledger.Decrement(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return o.store.MergeItem(ctx, basket, productID, quantity)
}

// RemoveProduct restores stock for the product and reduces the basket's line.
// Stock is restored unconditionally, before the basket is inspected: the
// operation does not validate that the basket actually held that many units.
func (o *Operations) RemoveProduct(ctx context.Context, userID, productID string, quantity int) (_ *domain.Basket, err error) {
	ctx, span := o.tracer.Start(ctx, spanPrefix+"RemoveProductFromBasket",
		attribute.String("use_case", useCaseRemove),
		attribute.String("product.id", productID),
		attribute.Int("basket.quantity", quantity),
	)
	start := time.Now()
	defer func() { o.finish(ctx, span, useCaseRemove, userID, productID, quantity, start, err) }()

	basket, err := o.store.BasketFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := o.ledger.Increment(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return o.store.ReduceItem(ctx, basket, productID, quantity)
}

func (o *Operations) finish(ctx context.Context, span trace.Span, useCase, userID, productID string, quantity int, start time.Time, err error) {
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
	o.reqCounter.Add(1,
		observability.L("use_case", useCase),
		observability.L("outcome", outcome),
	)
	o.durHistogram.Observe(latency,
		observability.L("use_case", useCase),
	)

	fields := []observability.Field{
		observability.F("use_case", useCase),
		observability.F("user_id", userID),
		observability.F("product_id", productID),
		observability.F("quantity", quantity),
		observability.F("outcome", outcome),
		observability.F("latency_seconds", latency),
	}
	if err != nil {
		fields = append(fields, observability.F("error", err.Error()))
	}
	logctx.FromOr(ctx, o.log).Info("use_case_done", fields...)
}
