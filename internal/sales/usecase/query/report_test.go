package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/kelompok6/retail-pos/internal/catalog/repository"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
	salesrepo "github.com/kelompok6/retail-pos/internal/sales/repository"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
)

func seededCatalog(t *testing.T) *catalogrepo.StoreProductRepository {
	t.Helper()
	catalog, err := catalogrepo.NewStoreProductRepository(kvstore.NewMemoryStore())
	require.NoError(t, err)
	return catalog
}

func emptyLedger(t *testing.T) *salesrepo.StoreLedgerRepository {
	t.Helper()
	ledger, err := salesrepo.NewStoreLedgerRepository(kvstore.NewMemoryStore())
	require.NoError(t, err)
	return ledger
}

func appendSale(t *testing.T, ledger *salesrepo.StoreLedgerRepository, id string, ts time.Time, amount, cost int64) {
	t.Helper()
	quantity := 1
	sale, err := domain.NewSale(id, ts, []domain.SaleItem{{
		ProductID: "p1",
		Name:      "Minyak Goreng 1L",
		Quantity:  quantity,
		Price:     decimal.NewFromInt(amount),
		Cost:      decimal.NewFromInt(cost),
		Subtotal:  decimal.NewFromInt(amount),
	}})
	require.NoError(t, err)
	require.NoError(t, ledger.Append(sale))
}

func TestReportSummaryEmptyLedger(t *testing.T) {
	handler := NewReportSummaryHandler(seededCatalog(t), emptyLedger(t))

	summary := handler.Handle(ReportSummaryQuery{})

	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.TotalCost.IsZero())
	assert.True(t, summary.TotalProfit.IsZero())
	assert.Zero(t, summary.TransactionCount)
	assert.Equal(t, 4, summary.ProductCount)
	assert.Zero(t, summary.LowStockCount)
}

func TestReportSummaryTotals(t *testing.T) {
	catalog := seededCatalog(t)
	ledger := emptyLedger(t)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	appendSale(t, ledger, "s1", now, 54000, 42000)
	appendSale(t, ledger, "s2", now.Add(time.Hour), 75000, 65000)

	// Push one product to its threshold so the low-stock count moves.
	p, _ := catalog.FindByID("4")
	p.Stock = p.MinStock
	require.NoError(t, catalog.Update(p))

	summary := NewReportSummaryHandler(catalog, ledger).Handle(ReportSummaryQuery{})

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(129000)))
	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(107000)))
	assert.True(t, summary.TotalProfit.Equal(decimal.NewFromInt(22000)))
	assert.True(t, summary.TotalProfit.Equal(summary.TotalRevenue.Sub(summary.TotalCost)))
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, 4, summary.ProductCount)
	assert.Equal(t, 1, summary.LowStockCount)
}

func TestDailySeriesZeroFilled(t *testing.T) {
	handler := NewDailySeriesHandler(emptyLedger(t))

	reference := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local) // a Monday
	series := handler.Handle(DailySeriesQuery{Days: 7, Reference: reference})

	require.Len(t, series, 7, "every day present even with no sales")
	assert.Equal(t, "2025-03-04", series[0].Date)
	assert.Equal(t, "2025-03-10", series[6].Date)
	assert.Equal(t, "Tue", series[0].Label)
	assert.Equal(t, "Mon", series[6].Label)
	for _, bucket := range series {
		assert.True(t, bucket.Sales.IsZero())
		assert.True(t, bucket.Profit.IsZero())
	}
}

func TestDailySeriesBucketsByCalendarDate(t *testing.T) {
	ledger := emptyLedger(t)
	reference := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	// Two sales today at different hours, one two days ago, one outside the window.
	appendSale(t, ledger, "s1", reference.Add(-2*time.Hour), 54000, 42000)
	appendSale(t, ledger, "s2", time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local), 16000, 12500)
	appendSale(t, ledger, "s3", reference.AddDate(0, 0, -2), 75000, 65000)
	appendSale(t, ledger, "s4", reference.AddDate(0, 0, -7), 21000, 15000)

	series := NewDailySeriesHandler(ledger).Handle(DailySeriesQuery{Days: 7, Reference: reference})
	require.Len(t, series, 7)

	today := series[6]
	assert.True(t, today.Sales.Equal(decimal.NewFromInt(70000)), "same calendar date regardless of hour")
	assert.True(t, today.Profit.Equal(decimal.NewFromInt(15500)))

	twoDaysAgo := series[4]
	assert.True(t, twoDaysAgo.Sales.Equal(decimal.NewFromInt(75000)))

	// s4 fell off the window; yesterday stays zero.
	assert.True(t, series[5].Sales.IsZero())
	total := decimal.Zero
	for _, bucket := range series {
		total = total.Add(bucket.Sales)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(145000)))
}

func TestDailySeriesDefaults(t *testing.T) {
	series := NewDailySeriesHandler(emptyLedger(t)).Handle(DailySeriesQuery{})

	require.Len(t, series, 7)
	assert.Equal(t, time.Now().Format("2006-01-02"), series[6].Date, "window ends today")
}

func TestListSales(t *testing.T) {
	ledger := emptyLedger(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	appendSale(t, ledger, "s1", now, 54000, 42000)
	appendSale(t, ledger, "s2", now.Add(time.Hour), 75000, 65000)

	sales := NewListSalesHandler(ledger).Handle(ListSalesQuery{})
	require.Len(t, sales, 2)
	assert.Equal(t, "s2", sales[0].ID, "newest first")
}
