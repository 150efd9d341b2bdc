package deal

import (
	"context"
	"errors"
	"fmt"

	domcat "github.com/estore-labs/electrostore/internal/domain/catalog"
	domain "github.com/estore-labs/electrostore/internal/domain/deal"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/observability/logctx"
)

const catalogService = "deal-catalog"

// Catalog resolves the single promotional rule applicable to a product.
type Catalog struct {
	deals    domain.Repository
	products domcat.Repository
	log      observability.Logger
}

func NewCatalog(deals domain.Repository, products domcat.Repository, tel observability.Observability) *Catalog {
	baseLog := observability.NopLogger()
	if tel != nil {
		baseLog = tel.Logger()
	}
	return &Catalog{
		deals:    deals,
		products: products,
		log:      baseLog.With(observability.F("service", catalogService)),
	}
}

// FindDealForProduct returns the product's deal when one exists, is of a
// recognized type, and has not expired at the moment of the call. Expiry is
// evaluated against the wall clock on every read, never cached: pricing must
// reflect the request instant. Inactive or unrecognized deals are treated as
// absent (nil, nil).
func (c *Catalog) FindDealForProduct(ctx context.Context, productID string) (*domain.Deal, error) {
	found, err := c.deals.FindByProductID(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("deal: find: %w", err)
	}
	if !found.Type.Recognized() || !found.IsActive() {
		return nil, nil
	}
	return found, nil
}

// RegisterDeal validates that the target product exists and persists the deal.
// A product carries at most one deal; registering again replaces it.
func (c *Catalog) RegisterDeal(ctx context.Context, d *domain.Deal) error {
	if d == nil || d.ProductID == "" {
		return domain.ErrMissingProductID
	}
	if _, err := c.products.FindByID(ctx, d.ProductID); err != nil {
		return fmt.Errorf("deal: register: %w", err)
	}
	if err := c.deals.Save(ctx, d); err != nil {
		return fmt.Errorf("deal: register: %w", err)
	}
	logctx.FromOr(ctx, c.log).Info("deal_registered",
		observability.F("deal_id", d.ID),
		observability.F("product_id", d.ProductID),
		observability.F("deal_type", string(d.Type)),
	)
	return nil
}
