package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// ProductsKey is the fixed persistence key for the catalog collection.
const ProductsKey = "retail_products"

// StoreProductRepository keeps the catalog in memory as the source of truth
// and rewrites the whole collection to the key-value store on every mutation.
// Persistence is best-effort caching: a failed write is logged, never rolled
// back into the in-memory state.
type StoreProductRepository struct {
	mu       sync.RWMutex
	store    kvstore.Store
	products []domain.Product
}

// NewStoreProductRepository loads the catalog from the store, installing the
// seed catalog when the key is absent.
func NewStoreProductRepository(store kvstore.Store) (*StoreProductRepository, error) {
	r := &StoreProductRepository{store: store}

	data, err := store.Get(context.Background(), ProductsKey)
	switch {
	case errors.Is(err, kvstore.ErrKeyNotFound):
		r.products = domain.SeedProducts()
		r.persist()
	case err != nil:
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	default:
		if err := json.Unmarshal(data, &r.products); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	}

	return r, nil
}

// persist rewrites the full collection. Callers must hold at least a read lock.
func (r *StoreProductRepository) persist() {
	data, err := json.Marshal(r.products)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode catalog")
		return
	}
	if err := r.store.Set(context.Background(), ProductsKey, data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to persist catalog")
	}
}

func (r *StoreProductRepository) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	r.persist()
	return nil
}

// FindByID returns the product and whether it exists. Absence is a normal
// condition for existence checks, so it is not an error.
func (r *StoreProductRepository) FindByID(id string) (*domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (r *StoreProductRepository) FindAll() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Search matches the query case-insensitively against name and SKU.
func (r *StoreProductRepository) Search(query string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}

// Update replaces the entry matching product.ID wholesale.
func (r *StoreProductRepository) Update(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			r.persist()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// Delete removes the entry immediately and unconditionally. Historical sales
// keep their own name/price snapshots, so no reference check is needed.
func (r *StoreProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.persist()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// DecrementStock subtracts quantity from the product's stock. It is used only
// by the checkout path, after stock has been re-validated for every line.
func (r *StoreProductRepository) DecrementStock(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			if quantity > r.products[i].Stock {
				return fmt.Errorf("%w: product %s has %d, requested %d",
					domain.ErrInsufficientStock, id, r.products[i].Stock, quantity)
			}
			r.products[i].Stock -= quantity
			r.persist()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *StoreProductRepository) LowStock() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Product
	for _, p := range r.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

func (r *StoreProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
