package query

import (
	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

// ListSalesQuery lists the committed sales, newest first.
type ListSalesQuery struct{}

// ListSalesHandler handles the list sales query.
type ListSalesHandler struct {
	ledger domain.LedgerRepository
}

// NewListSalesHandler creates a new list sales handler.
func NewListSalesHandler(ledger domain.LedgerRepository) *ListSalesHandler {
	return &ListSalesHandler{ledger: ledger}
}

// Handle executes the list sales query.
func (h *ListSalesHandler) Handle(ListSalesQuery) []domain.Sale {
	return h.ledger.FindAll()
}
