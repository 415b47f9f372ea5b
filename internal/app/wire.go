//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/kelompok6/retail-pos/internal/auth"
	cataloghttp "github.com/kelompok6/retail-pos/internal/catalog/delivery/http"
	"github.com/kelompok6/retail-pos/internal/insight"
	saleshttp "github.com/kelompok6/retail-pos/internal/sales/delivery/http"
	"github.com/kelompok6/retail-pos/internal/sales/usecase/command"
	"github.com/kelompok6/retail-pos/kafka"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
)

// RepositorySet provides the shared repositories.
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideLedgerRepository,
)

// InitializeHandlers initializes all HTTP handlers with their dependencies.
// publisher and insightService may be nil when the respective collaborator is
// disabled.
func InitializeHandlers(store kvstore.Store, publisher *kafka.Publisher, insightService *insight.Service) (*Handlers, error) {
	wire.Build(
		RepositorySet,
		command.NewCheckoutHandler,
		auth.NewHandler,
		cataloghttp.NewCatalogHandler,
		saleshttp.NewSalesHandler,
		insight.NewHandler,
		wire.Struct(new(Handlers), "*"),
	)
	return nil, nil
}
