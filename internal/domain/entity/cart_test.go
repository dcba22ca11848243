package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, regular string) *Product {
	return &Product{ID: id, Title: "Title " + id, ImageURL: "https://img/" + id, RegularPrice: price(regular), IsActive: true}
}

func TestCartItems_AddAggregatesByProduct(t *testing.T) {
	p1 := testProduct("p1", "100")

	var items CartItems
	for range 5 {
		items = items.Add(p1)
	}

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, price("500").Equal(items.Total()))
}

func TestCartItems_AddCapturesEffectivePrice(t *testing.T) {
	p := testProduct("p1", "100")
	p.SalePrice = pricePtr("75")

	items := CartItems{}.Add(p)

	assert.True(t, price("75").Equal(items[0].Price))
	assert.Equal(t, "Title p1", items[0].Title)
	assert.Equal(t, "https://img/p1", items[0].ImageURL)
}

func TestCartItems_NonPositiveQuantityRemoves(t *testing.T) {
	base := CartItems{}.Add(testProduct("p1", "10")).Add(testProduct("p2", "20"))
	removed := base.Remove("p1")

	for _, q := range []int{0, -1} {
		assert.Equal(t, removed, base.SetQuantity("p1", q))
	}
}

func TestCartItems_SetQuantity(t *testing.T) {
	items := CartItems{}.Add(testProduct("p1", "10"))

	items = items.SetQuantity("p1", 42)
	assert.Equal(t, 42, items[0].Quantity)

	unchanged := items.SetQuantity("missing", 3)
	assert.Equal(t, items, unchanged)
}

func TestCartItems_RemoveMissingIsNoop(t *testing.T) {
	items := CartItems{}.Add(testProduct("p1", "10"))

	assert.Equal(t, items, items.Remove("missing"))
}

func TestCartItems_MutatorsDoNotAlias(t *testing.T) {
	original := CartItems{}.Add(testProduct("p1", "10"))

	_ = original.Add(testProduct("p1", "10"))
	_ = original.SetQuantity("p1", 9)
	_ = original.Remove("p1")

	require.Len(t, original, 1)
	assert.Equal(t, 1, original[0].Quantity)
}

func TestCartItems_Count(t *testing.T) {
	items := CartItems{}.Add(testProduct("p1", "10")).Add(testProduct("p1", "10")).Add(testProduct("p2", "5"))

	assert.Equal(t, 3, items.Count())
}
