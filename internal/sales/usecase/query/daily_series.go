package query

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

// DailySeriesQuery buckets sales per calendar day for the trailing window
// ending at Reference inclusive. Days defaults to 7, Reference to now.
type DailySeriesQuery struct {
	Days      int
	Reference time.Time
}

// DailyBucket is one calendar day of the series. Days without sales are
// present with zero amounts, never absent.
type DailyBucket struct {
	Date   string          `json:"date"`
	Label  string          `json:"label"`
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
}

// DailySeriesHandler handles the daily series query.
type DailySeriesHandler struct {
	ledger domain.LedgerRepository
}

// NewDailySeriesHandler creates a new daily series handler.
func NewDailySeriesHandler(ledger domain.LedgerRepository) *DailySeriesHandler {
	return &DailySeriesHandler{ledger: ledger}
}

// Handle returns exactly q.Days buckets in chronological order, oldest first.
// A sale belongs to a bucket when its timestamp falls on that local calendar
// date; this is date equality, not a rolling 24h window.
func (h *DailySeriesHandler) Handle(q DailySeriesQuery) []DailyBucket {
	days := q.Days
	if days <= 0 {
		days = 7
	}
	reference := q.Reference
	if reference.IsZero() {
		reference = time.Now()
	}

	sales := h.ledger.FindAll()
	series := make([]DailyBucket, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i)
		bucket := DailyBucket{
			Date:   day.Format("2006-01-02"),
			Label:  day.Weekday().String()[:3],
			Sales:  decimal.Zero,
			Profit: decimal.Zero,
		}

		for _, sale := range sales {
			if sameDay(sale.Timestamp, day) {
				bucket.Sales = bucket.Sales.Add(sale.TotalAmount)
				bucket.Profit = bucket.Profit.Add(sale.TotalProfit)
			}
		}

		series = append(series, bucket)
	}

	return series
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
