package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// StoreProductRepositoryWithTracing wraps StoreProductRepository with tracing
// for the mutating operations on the checkout and CRUD paths.
type StoreProductRepositoryWithTracing struct {
	*StoreProductRepository
}

// NewStoreProductRepositoryWithTracing creates a new repository with tracing.
func NewStoreProductRepositoryWithTracing(repo *StoreProductRepository) *StoreProductRepositoryWithTracing {
	return &StoreProductRepositoryWithTracing{StoreProductRepository: repo}
}

// CreateWithContext records a span around Create.
func (r *StoreProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.id", product.ID),
			attribute.String("product.sku", product.SKU),
			attribute.Int("product.stock", product.Stock),
		),
	)
	defer span.End()

	if err := r.StoreProductRepository.Create(product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DecrementStockWithContext records a span around DecrementStock.
func (r *StoreProductRepositoryWithTracing) DecrementStockWithContext(ctx context.Context, id string, quantity int) error {
	_, span := tracer.Start(ctx, "repository.DecrementStock",
		trace.WithAttributes(
			attribute.String("product.id", id),
			attribute.Int("decrement.quantity", quantity),
		),
	)
	defer span.End()

	if err := r.StoreProductRepository.DecrementStock(id, quantity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
