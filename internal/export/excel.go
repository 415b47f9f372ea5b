// Package export builds the downloadable sales report workbook. It is
// read-only with respect to the catalog and ledger.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

const sheetName = "Laporan Penjualan"

// Filename returns the dated report file name.
func Filename(now time.Time) string {
	return fmt.Sprintf("Laporan_Keuangan_Toko_%s.xlsx", now.Format("2006-01-02"))
}

// BuildWorkbook renders one row per sale plus a summary block. The caller
// owns the returned file and should stream it with File.Write.
func BuildWorkbook(sales []domain.Sale) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []interface{}{
		"ID Transaksi", "Tanggal", "Waktu", "Daftar Barang",
		"Total Penjualan (Rp)", "Total HPP/Modal (Rp)", "Laba Kotor (Rp)",
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	totalRevenue := decimal.Zero
	totalCost := decimal.Zero

	for i, sale := range sales {
		row := []interface{}{
			sale.ID,
			sale.Timestamp.Format("02/01/2006"),
			sale.Timestamp.Format("15:04:05"),
			itemList(sale.Items),
			sale.TotalAmount.InexactFloat64(),
			sale.TotalCost.InexactFloat64(),
			sale.TotalProfit.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write sale row: %w", err)
		}

		totalRevenue = totalRevenue.Add(sale.TotalAmount)
		totalCost = totalCost.Add(sale.TotalCost)
	}

	// Summary block below the table, matching the printed report layout.
	summary := [][]interface{}{
		{""},
		{"RINGKASAN LAPORAN"},
		{"Total Pendapatan", totalRevenue.InexactFloat64()},
		{"Total HPP", totalCost.InexactFloat64()},
		{"Total Laba", totalRevenue.Sub(totalCost).InexactFloat64()},
	}
	base := len(sales) + 2
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", base+i)
		r := row
		if err := f.SetSheetRow(sheetName, cell, &r); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return f, nil
}

func itemList(items []domain.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
