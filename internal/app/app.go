// Package app assembles the POS service: one shared catalog repository and
// one shared ledger feed every handler, so all views observe the same state.
package app

import (
	"github.com/kelompok6/retail-pos/internal/auth"
	cataloghttp "github.com/kelompok6/retail-pos/internal/catalog/delivery/http"
	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	catalogrepo "github.com/kelompok6/retail-pos/internal/catalog/repository"
	"github.com/kelompok6/retail-pos/internal/insight"
	saleshttp "github.com/kelompok6/retail-pos/internal/sales/delivery/http"
	salesdomain "github.com/kelompok6/retail-pos/internal/sales/domain"
	salesrepo "github.com/kelompok6/retail-pos/internal/sales/repository"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
)

// Handlers bundles every HTTP handler the service mounts.
type Handlers struct {
	Auth    *auth.Handler
	Catalog *cataloghttp.CatalogHandler
	Sales   *saleshttp.SalesHandler
	Insight *insight.Handler
}

// ProvideProductRepository provides the catalog repository, wrapped with
// tracing.
func ProvideProductRepository(store kvstore.Store) (catalogdomain.ProductRepository, error) {
	repo, err := catalogrepo.NewStoreProductRepository(store)
	if err != nil {
		return nil, err
	}
	return catalogrepo.NewStoreProductRepositoryWithTracing(repo), nil
}

// ProvideLedgerRepository provides the sale ledger repository.
func ProvideLedgerRepository(store kvstore.Store) (salesdomain.LedgerRepository, error) {
	return salesrepo.NewStoreLedgerRepository(store)
}
