package insight

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	salesdomain "github.com/kelompok6/retail-pos/internal/sales/domain"
)

// Handler serves the advisory insight endpoint.
type Handler struct {
	service *Service
	catalog catalogdomain.ProductRepository
	ledger  salesdomain.LedgerRepository
}

// NewHandler creates a new insight handler. service may be nil when the
// Gemini client could not be initialized; the fallback message is served.
func NewHandler(service *Service, catalog catalogdomain.ProductRepository, ledger salesdomain.LedgerRepository) *Handler {
	return &Handler{service: service, catalog: catalog, ledger: ledger}
}

// GetInsights handles GET /api/insights
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	text := FallbackMessage
	if h.service != nil {
		text = h.service.BusinessInsights(r.Context(), h.catalog.FindAll(), h.ledger.FindAll())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    map[string]string{"insights": text},
	})
}

// RegisterRoutes registers the insight route.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/insights", h.GetInsights).Methods("GET")
}
