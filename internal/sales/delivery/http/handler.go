package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/internal/export"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
	"github.com/kelompok6/retail-pos/internal/sales/usecase/command"
	"github.com/kelompok6/retail-pos/internal/sales/usecase/query"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// SalesHandler handles HTTP requests for the POS session and reports. It owns
// the single active cart; the mutex serializes cart mutations and checkouts
// so two checkout requests can never interleave against the same cart and
// catalog pair.
type SalesHandler struct {
	mu   sync.Mutex
	cart *domain.Cart

	addToCartHandler   *command.AddToCartHandler
	setQuantityHandler *command.SetCartQuantityHandler
	checkoutHandler    *command.CheckoutHandler

	listSalesHandler   *query.ListSalesHandler
	summaryHandler     *query.ReportSummaryHandler
	dailySeriesHandler *query.DailySeriesHandler

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	checkoutCounter prometheus.Counter
}

// NewSalesHandler creates a new sales handler with an empty session cart.
func NewSalesHandler(
	catalog catalogdomain.ProductRepository,
	ledger domain.LedgerRepository,
	checkoutHandler *command.CheckoutHandler,
) *SalesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_requests_total",
			Help: "Total number of requests to the sales endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_request_duration_seconds",
			Help:    "Duration of sales requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	checkoutCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_checkouts_total",
			Help: "Total number of committed checkouts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(checkoutCounter)

	return &SalesHandler{
		cart:               domain.NewCart(),
		addToCartHandler:   command.NewAddToCartHandler(catalog),
		setQuantityHandler: command.NewSetCartQuantityHandler(catalog),
		checkoutHandler:    checkoutHandler,
		listSalesHandler:   query.NewListSalesHandler(ledger),
		summaryHandler:     query.NewReportSummaryHandler(catalog, ledger),
		dailySeriesHandler: query.NewDailySeriesHandler(ledger),
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		checkoutCounter:    checkoutCounter,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type cartView struct {
	Items []domain.SaleItem `json:"items"`
	Total string            `json:"total"`
}

func (h *SalesHandler) cartSnapshot() cartView {
	return cartView{
		Items: h.cart.Items(),
		Total: h.cart.Total().String(),
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *SalesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetCart handles GET /api/cart
func (h *SalesHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	respondJSON(w, http.StatusOK, Response{Success: true, Data: h.cartSnapshot()})
}

// AddCartItem handles POST /api/cart/items
func (h *SalesHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.addToCartHandler.Handle(h.cart, command.AddToCartCommand{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("product_id", req.ProductID).Msg("Failed to add cart item")
		respondJSON(w, statusFromError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    h.cartSnapshot(),
	})
}

// SetCartItemQuantity handles PATCH /api/cart/items/{product_id}
func (h *SalesHandler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.setQuantityHandler.Handle(h.cart, command.SetCartQuantityCommand{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondJSON(w, statusFromError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: h.cartSnapshot()})
}

// RemoveCartItem handles DELETE /api/cart/items/{product_id}
func (h *SalesHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]

	h.mu.Lock()
	defer h.mu.Unlock()

	h.cart.RemoveItem(productID)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: h.cartSnapshot()})
}

// ClearCart handles DELETE /api/cart
func (h *SalesHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cart.Clear()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Cart cleared"})
}

// Checkout handles POST /api/checkout
func (h *SalesHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sale, err := h.checkoutHandler.Handle(r.Context(), h.cart)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Checkout rejected")
		respondJSON(w, statusFromError(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.checkoutCounter.Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Transaction completed",
		Data:    sale,
	})
}

// ListSales handles GET /api/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales := h.listSalesHandler.Handle(query.ListSalesQuery{})
	respondJSON(w, http.StatusOK, Response{Success: true, Data: sales})
}

// ReportSummary handles GET /api/reports/summary
func (h *SalesHandler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.summaryHandler.Handle(query.ReportSummaryQuery{})
	respondJSON(w, http.StatusOK, Response{Success: true, Data: summary})
}

// DailySeries handles GET /api/reports/daily
func (h *SalesHandler) DailySeries(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	series := h.dailySeriesHandler.Handle(query.DailySeriesQuery{Days: days})
	respondJSON(w, http.StatusOK, Response{Success: true, Data: series})
}

// ExportReport handles GET /api/reports/export
func (h *SalesHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	sales := h.listSalesHandler.Handle(query.ListSalesQuery{})

	workbook, err := export.BuildWorkbook(sales)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build report workbook")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build report"})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename(time.Now()))
	if err := workbook.Write(w); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to stream report workbook")
	}
}

// RegisterRoutes registers all POS and report routes.
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddCartItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{product_id}", h.metricsMiddleware("/api/cart/items/{product_id}", h.SetCartItemQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{product_id}", h.metricsMiddleware("/api/cart/items/{product_id}", h.RemoveCartItem)).Methods("DELETE")
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", h.Checkout)).Methods("POST")
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.ListSales)).Methods("GET")
	router.HandleFunc("/api/reports/summary", h.metricsMiddleware("/api/reports/summary", h.ReportSummary)).Methods("GET")
	router.HandleFunc("/api/reports/daily", h.metricsMiddleware("/api/reports/daily", h.DailySeries)).Methods("GET")
	router.HandleFunc("/api/reports/export", h.metricsMiddleware("/api/reports/export", h.ExportReport)).Methods("GET")
}

// RegisterHealthCheck registers the health endpoint.
func (h *SalesHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "POS service is healthy"})
	}).Methods("GET")
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrStockExceeded),
		errors.Is(err, catalogdomain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
