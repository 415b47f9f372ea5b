package command

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	catalogrepo "github.com/kelompok6/retail-pos/internal/catalog/repository"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
	salesrepo "github.com/kelompok6/retail-pos/internal/sales/repository"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
)

func newCheckoutFixture(t *testing.T) (*CheckoutHandler, *catalogrepo.StoreProductRepository, *salesrepo.StoreLedgerRepository) {
	t.Helper()

	catalog, err := catalogrepo.NewStoreProductRepository(kvstore.NewMemoryStore())
	require.NoError(t, err)
	ledger, err := salesrepo.NewStoreLedgerRepository(kvstore.NewMemoryStore())
	require.NoError(t, err)

	handler := NewCheckoutHandler(catalog, ledger, nil)
	handler.now = func() time.Time { return time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local) }
	handler.newID = func() string { return "sale-test-1" }

	return handler, catalog, ledger
}

func TestCheckout(t *testing.T) {
	handler, catalog, ledger := newCheckoutFixture(t)

	// Seeded product 1: price 18000, cost 14000, stock 50.
	product, ok := catalog.FindByID("1")
	require.True(t, ok)

	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(product, 3))

	sale, err := handler.Handle(context.Background(), cart)
	require.NoError(t, err)

	assert.Equal(t, "sale-test-1", sale.ID)
	assert.Equal(t, handler.now(), sale.Timestamp)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(54000)))
	assert.True(t, sale.TotalCost.Equal(decimal.NewFromInt(42000)))
	assert.True(t, sale.TotalProfit.Equal(decimal.NewFromInt(12000)))

	after, _ := catalog.FindByID("1")
	assert.Equal(t, 47, after.Stock)

	assert.Equal(t, 1, ledger.Count())
	assert.Equal(t, "sale-test-1", ledger.FindAll()[0].ID)

	assert.True(t, cart.IsEmpty(), "cart is cleared after checkout")
}

func TestCheckoutEmptyCart(t *testing.T) {
	handler, _, ledger := newCheckoutFixture(t)

	_, err := handler.Handle(context.Background(), domain.NewCart())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, ledger.Count())
}

func TestCheckoutRejectedWhenStockMovedUnderCart(t *testing.T) {
	handler, catalog, ledger := newCheckoutFixture(t)

	p1, _ := catalog.FindByID("1")
	p2, _ := catalog.FindByID("2")

	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(p1, 2))
	require.NoError(t, cart.AddItem(p2, 5))

	// Stock for product 2 drops below the cart line before checkout.
	p2.Stock = 4
	require.NoError(t, catalog.Update(p2))

	_, err := handler.Handle(context.Background(), cart)
	assert.ErrorIs(t, err, catalogdomain.ErrInsufficientStock)

	// Nothing committed: ledger empty, product 1 untouched, cart intact.
	assert.Zero(t, ledger.Count())
	after1, _ := catalog.FindByID("1")
	assert.Equal(t, 50, after1.Stock)
	after2, _ := catalog.FindByID("2")
	assert.Equal(t, 4, after2.Stock)
	assert.Equal(t, 2, cart.Len())
}

func TestCheckoutRejectedWhenProductDeletedUnderCart(t *testing.T) {
	handler, catalog, ledger := newCheckoutFixture(t)

	p1, _ := catalog.FindByID("1")
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(p1, 1))

	require.NoError(t, catalog.Delete("1"))

	_, err := handler.Handle(context.Background(), cart)
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
	assert.Zero(t, ledger.Count())
	assert.Equal(t, 1, cart.Len())
}

func TestCheckoutExactStockSucceeds(t *testing.T) {
	handler, catalog, _ := newCheckoutFixture(t)

	p1, _ := catalog.FindByID("1")
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(p1, 50))

	sale, err := handler.Handle(context.Background(), cart)
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(900000)))

	after, _ := catalog.FindByID("1")
	assert.Equal(t, 0, after.Stock)
}
