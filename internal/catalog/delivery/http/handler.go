package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/internal/catalog/usecase/command"
	"github.com/kelompok6/retail-pos/internal/catalog/usecase/query"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	addHandler    *command.AddProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	listHandler     *query.ListProductsHandler
	getHandler      *query.GetProductHandler
	lowStockHandler *query.LowStockHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(repo domain.ProductRepository) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		addHandler:      command.NewAddProductHandler(repo),
		updateHandler:   command.NewUpdateProductHandler(repo),
		deleteHandler:   command.NewDeleteProductHandler(repo),
		listHandler:     query.NewListProductsHandler(repo),
		getHandler:      query.NewGetProductHandler(repo),
		lowStockHandler: query.NewLowStockHandler(repo),
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type productRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"minStock"`
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

func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.addHandler.Handle(command.AddProductCommand{
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Stock:        req.Stock,
		MinStock:     req.MinStock,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, statusFromError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.listHandler.Handle(query.ListProductsQuery{
		Search: r.URL.Query().Get("q"),
	})

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:           id,
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Stock:        req.Stock,
		MinStock:     req.MinStock,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("product_id", id).Msg("Failed to update product")
		respondJSON(w, statusFromError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		respondJSON(w, statusFromError(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// LowStock handles GET /api/products/low-stock
func (h *CatalogHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products := h.lowStockHandler.Handle(query.LowStockQuery{})
	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// RegisterRoutes registers all catalog routes.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/low-stock", h.metricsMiddleware("/api/products/low-stock", h.LowStock)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
