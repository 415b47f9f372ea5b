package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kelompok6/retail-pos/internal/sales/domain"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// SalesKey is the fixed persistence key for the sale ledger.
const SalesKey = "retail_sales"

// StoreLedgerRepository is the append-only sale history, newest first. Like
// the catalog, memory is the source of truth and the whole collection is
// re-serialized to the key-value store after every append.
type StoreLedgerRepository struct {
	mu    sync.RWMutex
	store kvstore.Store
	sales []domain.Sale
}

// NewStoreLedgerRepository loads the ledger from the store; an absent key
// means an empty history.
func NewStoreLedgerRepository(store kvstore.Store) (*StoreLedgerRepository, error) {
	r := &StoreLedgerRepository{store: store}

	data, err := store.Get(context.Background(), SalesKey)
	switch {
	case errors.Is(err, kvstore.ErrKeyNotFound):
		// First run, nothing sold yet.
	case err != nil:
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	default:
		if err := json.Unmarshal(data, &r.sales); err != nil {
			return nil, fmt.Errorf("failed to decode ledger: %w", err)
		}
	}

	return r, nil
}

func (r *StoreLedgerRepository) persist() {
	data, err := json.Marshal(r.sales)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode ledger")
		return
	}
	if err := r.store.Set(context.Background(), SalesKey, data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to persist ledger")
	}
}

// Append prepends the sale, keeping the newest-first display order. Sales are
// never updated or deleted afterwards.
func (r *StoreLedgerRepository) Append(sale *domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append([]domain.Sale{*sale}, r.sales...)
	r.persist()
	return nil
}

func (r *StoreLedgerRepository) FindAll() []domain.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

func (r *StoreLedgerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sales)
}
