package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
)

func testProduct() *catalogdomain.Product {
	return &catalogdomain.Product{
		ID:           "p1",
		Name:         "Minyak Goreng 1L",
		SKU:          "MG001",
		Category:     "Sembako",
		CostPrice:    decimal.NewFromInt(14000),
		SellingPrice: decimal.NewFromInt(18000),
		Stock:        50,
		MinStock:     10,
	}
}

func TestAddItemSnapshotsPriceAndCost(t *testing.T) {
	cart := NewCart()
	product := testProduct()

	require.NoError(t, cart.AddItem(product, 2))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "Minyak Goreng 1L", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(18000)))
	assert.True(t, items[0].Cost.Equal(decimal.NewFromInt(14000)))
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(36000)))

	// Later catalog edits never change the line.
	product.SellingPrice = decimal.NewFromInt(99999)
	items = cart.Items()
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(18000)))
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(36000)))
}

func TestAddItemMergesLines(t *testing.T) {
	cart := NewCart()
	product := testProduct()

	require.NoError(t, cart.AddItem(product, 1))
	require.NoError(t, cart.AddItem(product, 2))

	require.Equal(t, 1, cart.Len(), "one line per product id")
	item := cart.Items()[0]
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(54000)))
}

func TestAddItemOutOfStock(t *testing.T) {
	cart := NewCart()
	product := testProduct()
	product.Stock = 0

	assert.ErrorIs(t, cart.AddItem(product, 1), ErrOutOfStock)
	assert.True(t, cart.IsEmpty())
}

func TestAddItemStockExceeded(t *testing.T) {
	cart := NewCart()
	product := testProduct()
	product.Stock = 3

	require.NoError(t, cart.AddItem(product, 2))

	err := cart.AddItem(product, 2)
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Equal(t, 2, cart.Items()[0].Quantity, "line keeps its prior quantity")

	// A fresh line larger than stock fails the same way.
	other := testProduct()
	other.ID = "p2"
	other.Stock = 1
	assert.ErrorIs(t, cart.AddItem(other, 5), ErrStockExceeded)
	assert.Equal(t, 1, cart.Len())
}

func TestAddItemInvalidQuantity(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.AddItem(testProduct(), -1), ErrInvalidQuantity)
}

func TestSetQuantity(t *testing.T) {
	cart := NewCart()
	product := testProduct()
	require.NoError(t, cart.AddItem(product, 1))

	require.NoError(t, cart.SetQuantity(product, 10))
	item := cart.Items()[0]
	assert.Equal(t, 10, item.Quantity)
	assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(180000)))
}

func TestSetQuantityFloorsAtOne(t *testing.T) {
	cart := NewCart()
	product := testProduct()
	require.NoError(t, cart.AddItem(product, 5))

	require.NoError(t, cart.SetQuantity(product, 0))
	assert.Equal(t, 1, cart.Items()[0].Quantity, "zero never reached through this path")
}

func TestSetQuantityStockExceeded(t *testing.T) {
	cart := NewCart()
	product := testProduct()
	product.Stock = 4
	require.NoError(t, cart.AddItem(product, 2))

	assert.ErrorIs(t, cart.SetQuantity(product, 5), ErrStockExceeded)
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestSetQuantityUnknownLine(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.SetQuantity(testProduct(), 1), ErrCartItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	product := testProduct()
	require.NoError(t, cart.AddItem(product, 1))

	cart.RemoveItem("p1")
	assert.True(t, cart.IsEmpty())

	// Removing an absent line is a no-op.
	cart.RemoveItem("p1")
	assert.True(t, cart.IsEmpty())
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	assert.True(t, cart.Total().IsZero())

	a := testProduct()
	b := testProduct()
	b.ID = "p2"
	b.SellingPrice = decimal.NewFromInt(16000)

	require.NoError(t, cart.AddItem(a, 3))
	require.NoError(t, cart.AddItem(b, 2))

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(86000)))
}

func TestSubtotalIdentityAfterEveryMutation(t *testing.T) {
	cart := NewCart()
	product := testProduct()

	require.NoError(t, cart.AddItem(product, 2))
	require.NoError(t, cart.AddItem(product, 3))
	require.NoError(t, cart.SetQuantity(product, 7))

	for _, item := range cart.Items() {
		expected := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		assert.True(t, item.Subtotal.Equal(expected), "subtotal == quantity * price")
	}
}

func TestClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(testProduct(), 2))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}
