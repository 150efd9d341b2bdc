package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	appdeal "github.com/estore-labs/electrostore/internal/application/deal"
	"github.com/estore-labs/electrostore/internal/domain/catalog"
	domdeal "github.com/estore-labs/electrostore/internal/domain/deal"
	"github.com/estore-labs/electrostore/internal/observability"
)

// Loader populates the catalog with a demo product set and a couple of sample
// deals so a fresh store is immediately usable.
type Loader struct {
	products catalog.Repository
	deals    *appdeal.Catalog
	ids      IDGenerator
	log      observability.Logger
}

type IDGenerator interface {
	NewID() string
}

func NewLoader(products catalog.Repository, deals *appdeal.Catalog, ids IDGenerator, tel observability.Observability) *Loader {
	baseLog := observability.NopLogger()
	if tel != nil {
		baseLog = tel.Logger()
	}
	return &Loader{
		products: products,
		deals:    deals,
		ids:      ids,
		log:      baseLog.With(observability.F("service", "seed-loader")),
	}
}

type fixture struct {
	id       string
	name     string
	category catalog.Category
	price    string
	stock    int
}

var productFixtures = []fixture{
	{"laptop-pro-x1", "Laptop Pro X1", catalog.CategoryElectronics, "1200.00", 10},
	{"gaming-mouse-g502", "Gaming Mouse G502", catalog.CategoryElectronics, "75.00", 50},
	{"mech-keyboard-k95", "Mechanical Keyboard K95", catalog.CategoryElectronics, "150.00", 20},
	{"ultrawide-monitor-34", "Ultrawide Monitor 34", catalog.CategoryElectronics, "600.00", 5},
	{"wireless-headset-h7", "Wireless Headset H7", catalog.CategoryElectronics, "100.00", 30},
	{"graphics-card-rtx4080", "Graphics Card RTX 4080", catalog.CategoryElectronics, "1000.00", 2},
	{"effective-java", "Effective Java", catalog.CategoryBooks, "45.00", 100},
	{"pragmatic-programmer", "The Pragmatic Programmer", catalog.CategoryBooks, "55.00", 70},
	{"lotr", "The Lord of the Rings", catalog.CategoryBooks, "25.00", 150},
	{"dev-hoodie", "Java Developer Hoodie", catalog.CategoryClothing, "40.00", 120},
	{"tech-cap", "Tech Enthusiast Cap", catalog.CategoryClothing, "15.00", 300},
	{"smart-speaker-echo", "Smart Speaker Echo", catalog.CategoryHomeAppliances, "99.99", 15},
	{"robot-vacuum", "Robot Vacuum Cleaner", catalog.CategoryHomeAppliances, "250.00", 10},
	{"seasonal-decor", "Seasonal Decor", catalog.CategoryHomeAppliances, "30.00", 0},
	{"fitness-tracker", "Smart Fitness Tracker", catalog.CategorySports, "80.00", 60},
	{"rc-car", "RC Car High Speed", catalog.CategoryToys, "65.00", 45},
	{"coffee-beans", "Gourmet Coffee Beans", catalog.CategoryFood, "18.00", 500},
}

// Load creates the fixture products plus two demo deals: a perpetual BOGO50 on
// the laptop and an expiring one on the monitor.
func (l *Loader) Load(ctx context.Context) error {
	for _, f := range productFixtures {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("seed: price for %s: %w", f.id, err)
		}
		product, err := catalog.New(f.id, f.name, f.category, price, f.stock)
		if err != nil {
			return fmt.Errorf("seed: product %s: %w", f.id, err)
		}
		if err := l.products.Save(ctx, product); err != nil {
			return fmt.Errorf("seed: save product %s: %w", f.id, err)
		}
	}

	perpetual, err := domdeal.New(l.ids.NewID(), "laptop-pro-x1", domdeal.TypeBOGO50, nil)
	if err != nil {
		return fmt.Errorf("seed: deal: %w", err)
	}
	if err := l.deals.RegisterDeal(ctx, perpetual); err != nil {
		return fmt.Errorf("seed: register deal: %w", err)
	}

	expiry := time.Now().Add(72 * time.Hour)
	expiring, err := domdeal.New(l.ids.NewID(), "ultrawide-monitor-34", domdeal.TypeBOGO50, &expiry)
	if err != nil {
		return fmt.Errorf("seed: deal: %w", err)
	}
	if err := l.deals.RegisterDeal(ctx, expiring); err != nil {
		return fmt.Errorf("seed: register deal: %w", err)
	}

	l.log.Info("demo_data_loaded",
		observability.F("products", len(productFixtures)),
		observability.F("deals", 2),
	)
	return nil
}
