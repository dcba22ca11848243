package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CartLineItem is one product in a cart. Price is the effective price captured
// when the product was first added.
type CartLineItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	ImageURL  string          `json:"imageUrl"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is price times quantity.
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartItems is an ordered list holding at most one line per product.
// Mutators return a new slice and never modify the receiver's backing array.
type CartItems []CartLineItem

func (items CartItems) indexOf(productID string) int {
	return slices.IndexFunc(items, func(item CartLineItem) bool {
		return item.ProductID == productID
	})
}

// Add increments the existing line for product or appends a new line with
// quantity 1 at the product's effective price.
func (items CartItems) Add(product *Product) CartItems {
	out := items.Clone()
	if idx := out.indexOf(product.ID); idx >= 0 {
		out[idx].Quantity++

		return out
	}

	return append(out, CartLineItem{
		ProductID: product.ID,
		Title:     product.Title,
		ImageURL:  product.ImageURL,
		Price:     product.EffectivePrice(),
		Quantity:  1,
	})
}

// SetQuantity sets the line's quantity; quantity <= 0 removes the line.
// Unknown products are ignored.
func (items CartItems) SetQuantity(productID string, quantity int) CartItems {
	if quantity <= 0 {
		return items.Remove(productID)
	}

	out := items.Clone()
	if idx := out.indexOf(productID); idx >= 0 {
		out[idx].Quantity = quantity
	}

	return out
}

// Remove drops the line for productID if present.
func (items CartItems) Remove(productID string) CartItems {
	return slices.DeleteFunc(items.Clone(), func(item CartLineItem) bool {
		return item.ProductID == productID
	})
}

// Clone returns a copy that shares no backing array with items.
func (items CartItems) Clone() CartItems {
	if items == nil {
		return CartItems{}
	}

	return slices.Clone(items)
}

// Total is the sum of price times quantity over all lines.
func (items CartItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// Count is the number of units across all lines.
func (items CartItems) Count() int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return count
}

// Cart is the persisted mirror of a user's cart.
type Cart struct {
	UserID string    `json:"userId"`
	Items  CartItems `json:"items"`
}

// CartSnapshot is what callers render: the items plus whether the first
// load from the remote mirror is still running.
type CartSnapshot struct {
	UserID    string          `json:"userId"`
	Items     CartItems       `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	Loading   bool            `json:"isCartLoading"`
}
