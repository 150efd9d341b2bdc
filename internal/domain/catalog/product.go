package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("catalog: product not found")
	ErrInvalidName       = errors.New("catalog: product name must not be blank")
	ErrInvalidPrice      = errors.New("catalog: product price must be greater than zero")
	ErrInvalidStock      = errors.New("catalog: product stock must not be negative")
	ErrInvalidQuantity   = errors.New("catalog: quantity must be greater than zero")
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

// InsufficientStockError reports a decrement that exceeds the available stock.
// It matches errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

type Category string

const (
	CategoryElectronics    Category = "ELECTRONICS"
	CategoryBooks          Category = "BOOKS"
	CategoryClothing       Category = "CLOTHING"
	CategoryHomeAppliances Category = "HOME_APPLIANCES"
	CategorySports         Category = "SPORTS"
	CategoryToys           Category = "TOYS"
	CategoryFood           Category = "FOOD"
)

type Product struct {
	ID       string
	Name     string
	Category Category
	Price    decimal.Decimal
	Stock    int
}

func New(id, name string, category Category, price decimal.Decimal, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	return &Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}, nil
}

func (p *Product) Available() bool {
	return p.Stock > 0
}

// DecrementStock subtracts quantity from the stock counter. Callers are expected
// to serialize calls for the same product; the entity itself holds no lock.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return &InsufficientStockError{
			ProductID: p.ID,
			Available: p.Stock,
			Requested: quantity,
		}
	}
	p.Stock -= quantity
	return nil
}

func (p *Product) IncrementStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	return nil
}

func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
