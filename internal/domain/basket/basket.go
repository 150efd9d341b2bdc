package basket

import "errors"

var (
	ErrNotFound         = errors.New("basket: not found")
	ErrIdentityRequired = errors.New("basket: user identity required")
)

// Item is one line of a basket. Quantity is always positive; a line reduced to
// zero is removed rather than stored.
type Item struct {
	ProductID string
	Quantity  int
}

// Basket holds at most one line per distinct product id, in insertion order.
// Baskets are created lazily on first use and never deleted.
type Basket struct {
	ID     string
	UserID string
	Items  []Item
}

func New(id, userID string) *Basket {
	return &Basket{
		ID:     id,
		UserID: userID,
		Items:  []Item{},
	}
}

// MergeItem adds quantity to the existing line for the product, or appends a
// new line when none exists.
func (b *Basket) MergeItem(productID string, quantity int) {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			b.Items[i].Quantity += quantity
			return
		}
	}
	b.Items = append(b.Items, Item{ProductID: productID, Quantity: quantity})
}

// ReduceItem subtracts quantity from the line for the product. A line reduced
// to zero or below is removed. Unknown product ids are a no-op.
func (b *Basket) ReduceItem(productID string, quantity int) {
	for i := range b.Items {
		if b.Items[i].ProductID != productID {
			continue
		}
		if b.Items[i].Quantity <= quantity {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
		} else {
			b.Items[i].Quantity -= quantity
		}
		return
	}
}

// ItemFor returns the line for the product id, if present.
func (b *Basket) ItemFor(productID string) (Item, bool) {
	for _, item := range b.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return Item{}, false
}

func (b *Basket) Clone() *Basket {
	if b == nil {
		return nil
	}
	clone := &Basket{
		ID:     b.ID,
		UserID: b.UserID,
		Items:  make([]Item, len(b.Items)),
	}
	copy(clone.Items, b.Items)
	return clone
}
