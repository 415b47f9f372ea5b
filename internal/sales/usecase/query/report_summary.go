package query

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

// ReportSummaryQuery computes the dashboard totals.
type ReportSummaryQuery struct{}

// ReportSummary is the derived dashboard snapshot: revenue, cost and profit
// over the whole ledger plus transaction and low-stock counts. Profit is
// always revenue minus cost.
type ReportSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	TransactionCount int             `json:"transactionCount"`
	ProductCount     int             `json:"productCount"`
	LowStockCount    int             `json:"lowStockCount"`
}

// ReportSummaryHandler handles the report summary query. It is a pure
// projection over catalog and ledger snapshots, recomputed on every call.
type ReportSummaryHandler struct {
	catalog catalogdomain.ProductRepository
	ledger  domain.LedgerRepository
}

// NewReportSummaryHandler creates a new report summary handler.
func NewReportSummaryHandler(catalog catalogdomain.ProductRepository, ledger domain.LedgerRepository) *ReportSummaryHandler {
	return &ReportSummaryHandler{catalog: catalog, ledger: ledger}
}

// Handle executes the report summary query.
func (h *ReportSummaryHandler) Handle(ReportSummaryQuery) *ReportSummary {
	revenue := decimal.Zero
	cost := decimal.Zero

	sales := h.ledger.FindAll()
	for _, sale := range sales {
		revenue = revenue.Add(sale.TotalAmount)
		cost = cost.Add(sale.TotalCost)
	}

	return &ReportSummary{
		TotalRevenue:     revenue,
		TotalCost:        cost,
		TotalProfit:      revenue.Sub(cost),
		TransactionCount: len(sales),
		ProductCount:     h.catalog.Count(),
		LowStockCount:    len(h.catalog.LowStock()),
	}
}
