package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Laporan_Keuangan_Toko_2025-03-10.xlsx", Filename(now))
}

func TestBuildWorkbook(t *testing.T) {
	sale, err := domain.NewSale("s1", time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local), []domain.SaleItem{
		{
			ProductID: "1",
			Name:      "Minyak Goreng 1L",
			Quantity:  3,
			Price:     decimal.NewFromInt(18000),
			Cost:      decimal.NewFromInt(14000),
			Subtotal:  decimal.NewFromInt(54000),
		},
	})
	require.NoError(t, err)

	f, err := BuildWorkbook([]domain.Sale{*sale})
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID Transaksi", header)

	id, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "s1", id)

	items, err := f.GetCellValue(sheetName, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Minyak Goreng 1L (x3)", items)

	revenue, err := f.GetCellValue(sheetName, "E2")
	require.NoError(t, err)
	assert.Equal(t, "54000", revenue)

	label, err := f.GetCellValue(sheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "RINGKASAN LAPORAN", label)
}

func TestBuildWorkbookEmptyLedger(t *testing.T) {
	f, err := BuildWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "RINGKASAN LAPORAN", label)

	total, err := f.GetCellValue(sheetName, "B4")
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}
