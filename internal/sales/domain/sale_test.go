package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleItems() []SaleItem {
	return []SaleItem{
		{
			ProductID: "p1",
			Name:      "Minyak Goreng 1L",
			Quantity:  3,
			Price:     decimal.NewFromInt(18000),
			Cost:      decimal.NewFromInt(14000),
			Subtotal:  decimal.NewFromInt(54000),
		},
		{
			ProductID: "p2",
			Name:      "Beras 5kg",
			Quantity:  1,
			Price:     decimal.NewFromInt(68000),
			Cost:      decimal.NewFromInt(62000),
			Subtotal:  decimal.NewFromInt(68000),
		},
	}
}

func TestNewSaleComputesTotals(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)

	sale, err := NewSale("s1", ts, saleItems())
	require.NoError(t, err)

	assert.Equal(t, "s1", sale.ID)
	assert.Equal(t, ts, sale.Timestamp)
	require.Len(t, sale.Items, 2)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(122000)))
	assert.True(t, sale.TotalCost.Equal(decimal.NewFromInt(104000)))
	assert.True(t, sale.TotalProfit.Equal(decimal.NewFromInt(18000)))
}

func TestNewSaleProfitIdentity(t *testing.T) {
	sale, err := NewSale("s1", time.Now(), saleItems())
	require.NoError(t, err)

	assert.True(t, sale.TotalProfit.Equal(sale.TotalAmount.Sub(sale.TotalCost)))
}

func TestNewSaleCopiesItems(t *testing.T) {
	items := saleItems()
	sale, err := NewSale("s1", time.Now(), items)
	require.NoError(t, err)

	items[0].Quantity = 99
	items[0].Subtotal = decimal.NewFromInt(1)

	assert.Equal(t, 3, sale.Items[0].Quantity)
	assert.True(t, sale.Items[0].Subtotal.Equal(decimal.NewFromInt(54000)))
}

func TestNewSaleRejectsEmptyItems(t *testing.T) {
	_, err := NewSale("s1", time.Now(), nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}
