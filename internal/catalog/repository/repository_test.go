package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
)

func newTestRepo(t *testing.T) (*StoreProductRepository, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo, err := NewStoreProductRepository(store)
	require.NoError(t, err)
	return repo, store
}

func TestSeedsOnAbsentKey(t *testing.T) {
	repo, _ := newTestRepo(t)

	products := repo.FindAll()
	require.Len(t, products, 4)
	assert.Equal(t, "Minyak Goreng 1L", products[0].Name)
}

func TestPersistsAcrossReload(t *testing.T) {
	repo, store := newTestRepo(t)

	require.NoError(t, repo.Create(&domain.Product{
		ID: "p9", Name: "Kopi Sachet", SKU: "KP009", Category: "Minuman",
		CostPrice: decimal.NewFromInt(1200), SellingPrice: decimal.NewFromInt(2000),
		Stock: 40, MinStock: 10,
	}))

	reloaded, err := NewStoreProductRepository(store)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Count())

	p, ok := reloaded.FindByID("p9")
	require.True(t, ok)
	assert.True(t, p.SellingPrice.Equal(decimal.NewFromInt(2000)))
}

func TestFindByIDAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, ok := repo.FindByID("nope")
	assert.False(t, ok)
}

func TestUpdateReplacesWholesale(t *testing.T) {
	repo, _ := newTestRepo(t)

	p, ok := repo.FindByID("1")
	require.True(t, ok)

	p.Name = "Minyak Goreng Premium 1L"
	p.SellingPrice = decimal.NewFromInt(19500)
	require.NoError(t, repo.Update(p))

	got, ok := repo.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "Minyak Goreng Premium 1L", got.Name)
	assert.True(t, got.SellingPrice.Equal(decimal.NewFromInt(19500)))
}

func TestUpdateUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Update(&domain.Product{ID: "ghost", Name: "x", SKU: "x", Category: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Delete("1"))
	_, ok := repo.FindByID("1")
	assert.False(t, ok)
	assert.Equal(t, 3, repo.Count())

	assert.ErrorIs(t, repo.Delete("1"), domain.ErrProductNotFound)
}

func TestDecrementStock(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.DecrementStock("1", 3))
	p, _ := repo.FindByID("1")
	assert.Equal(t, 47, p.Stock)

	err := repo.DecrementStock("1", 48)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Stock unchanged after the rejected decrement.
	p, _ = repo.FindByID("1")
	assert.Equal(t, 47, p.Stock)

	require.NoError(t, repo.DecrementStock("1", 47))
	p, _ = repo.FindByID("1")
	assert.Equal(t, 0, p.Stock, "stock may reach zero but never below")
}

func TestDecrementStockUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.ErrorIs(t, repo.DecrementStock("ghost", 1), domain.ErrProductNotFound)
}

func TestSearchMatchesNameAndSKU(t *testing.T) {
	repo, _ := newTestRepo(t)

	byName := repo.Search("minyak")
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	bySKU := repo.Search("br002")
	require.Len(t, bySKU, 1)
	assert.Equal(t, "2", bySKU[0].ID)

	assert.Empty(t, repo.Search("zzz"))
}

func TestLowStockBoundaries(t *testing.T) {
	repo, _ := newTestRepo(t)

	p, _ := repo.FindByID("4") // stock 15, min 5
	p.Stock = p.MinStock
	require.NoError(t, repo.Update(p))
	assert.Len(t, repo.LowStock(), 1, "at threshold is low")

	p.Stock = p.MinStock - 1
	require.NoError(t, repo.Update(p))
	assert.Len(t, repo.LowStock(), 1, "below threshold is low")

	p.Stock = p.MinStock + 1
	require.NoError(t, repo.Update(p))
	assert.Empty(t, repo.LowStock())
}
