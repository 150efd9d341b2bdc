package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	dombasket "github.com/estore-labs/electrostore/internal/domain/basket"
	"github.com/estore-labs/electrostore/internal/domain/catalog"
	domdeal "github.com/estore-labs/electrostore/internal/domain/deal"
	domain "github.com/estore-labs/electrostore/internal/domain/receipt"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/observability/logctx"
)

const (
	calculatorService = "receipt-calculator"
	useCaseCalculate  = "receipt.calculate"
)

// BasketSource resolves the basket snapshot being priced.
type BasketSource interface {
	BasketFor(ctx context.Context, userID string) (*dombasket.Basket, error)
}

// DealSource resolves the qualifying active deal for a product, or nil.
type DealSource interface {
	FindDealForProduct(ctx context.Context, productID string) (*domdeal.Deal, error)
}

// Calculator produces a priced receipt from a basket snapshot, the product
// catalog, and the deal catalog. It owns no state and mutates nothing.
type Calculator struct {
	baskets  BasketSource
	products catalog.Repository
	deals    DealSource

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewCalculator(baskets BasketSource, products catalog.Repository, deals DealSource, tel observability.Observability) *Calculator {
	baseLog := observability.NopLogger()
	tracer := observability.NopTracer()
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger()
		tracer = tel.Tracer()
		metricsProvider = tel.Metrics()
	}
	return &Calculator{
		baskets:      baskets,
		products:     products,
		deals:        deals,
		log:          baseLog.With(observability.F("service", calculatorService)),
		tracer:       tracer,
		reqCounter:   metricsProvider.Counter(observability.MUsecaseRequests),
		durHistogram: metricsProvider.Histogram(observability.MUsecaseDuration),
	}
}

// Calculate prices the user's basket line by line, in item order. A basket
// line referencing a product the catalog no longer knows fails the whole call
// with catalog.ErrNotFound: a dangling reference is a hard error, not a line
// to skip.
func (c *Calculator) Calculate(ctx context.Context, userID string) (_ *domain.Receipt, err error) {
	ctx, span := c.tracer.Start(ctx, "UC.CalculateReceipt",
		attribute.String("use_case", useCaseCalculate),
	)
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, useCaseCalculate)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()

		latency := time.Since(start).Seconds()
		c.reqCounter.Add(1,
			observability.L("use_case", useCaseCalculate),
			observability.L("outcome", outcome),
		)
		c.durHistogram.Observe(latency,
			observability.L("use_case", useCaseCalculate),
		)

		fields := []observability.Field{
			observability.F("use_case", useCaseCalculate),
			observability.F("user_id", userID),
			observability.F("outcome", outcome),
			observability.F("latency_seconds", latency),
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logctx.FromOr(ctx, c.log).Info("use_case_done", fields...)
	}()

	basket, err := c.baskets.BasketFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(basket.Items))
	dealsApplied := make([]string, 0)
	total := decimal.Zero

	for _, line := range basket.Items {
		product, err := c.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("receipt: product %s: %w", line.ProductID, err)
		}

		item := domain.Item{
			ProductID:      product.ID,
			ProductName:    product.Name,
			Category:       product.Category,
			OriginalPrice:  product.Price,
			Quantity:       line.Quantity,
			PriceAfterDeal: product.Price,
		}

		applicable, err := c.deals.FindDealForProduct(ctx, product.ID)
		if err != nil {
			return nil, fmt.Errorf("receipt: deal for product %s: %w", product.ID, err)
		}
		if applicable != nil {
			item.PriceAfterDeal = applicable.DiscountedUnitPrice(product.Price)
			item.DealApplied = string(applicable.Type)
			// One applied-deals entry per basket line, not per unit.
			dealsApplied = append(dealsApplied, applicable.Description(product.Name))
		}

		total = total.Add(item.LineTotal())
		items = append(items, item)
	}

	span.SetAttributes(
		attribute.Int("receipt.lines", len(items)),
		attribute.String("receipt.total", total.String()),
	)

	return &domain.Receipt{
		Items:        items,
		DealsApplied: dealsApplied,
		TotalPrice:   total,
	}, nil
}
