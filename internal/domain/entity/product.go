package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Optional fields are nil when absent.
type Product struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	RegularPrice  decimal.Decimal  `json:"regularPrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	StockQuantity int              `json:"stockQuantity"`
	Variants      *string          `json:"variants"` // comma separated, e.g. "S, M, L"
	CategoryID    string           `json:"categoryId"`
	ImageURL      string           `json:"imageUrl"`
	ImageHint     string           `json:"imageHint"`
	IsActive      bool             `json:"isActive"`
}

// EffectivePrice is the sale price when present and lower than the regular
// price, otherwise the regular price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OnSale() {
		return *p.SalePrice
	}

	return p.RegularPrice
}

// OnSale reports whether the sale price currently applies.
func (p *Product) OnSale() bool {
	return p.SalePrice != nil && p.SalePrice.LessThan(p.RegularPrice)
}

// VariantList splits Variants into trimmed, non-empty entries.
func (p *Product) VariantList() []string {
	if p.Variants == nil {
		return nil
	}

	var out []string
	for _, v := range strings.Split(*p.Variants, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// Category groups products.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID      string
	Query           string
	IncludeInactive bool
}
