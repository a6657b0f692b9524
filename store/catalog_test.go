package store

import (
	"testing"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *CatalogStore {
	t.Helper()
	catalog := NewCatalogStore(persistence.NewMemoryAdapter())
	catalog.Replace(DefaultProducts())
	return catalog
}

func TestCatalogGet(t *testing.T) {
	catalog := newTestCatalog(t)

	p, ok := catalog.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Noir Éclat", p.Name)

	_, ok = catalog.Get("nope")
	assert.False(t, ok)
}

func TestCatalogByCategoryIsCaseInsensitive(t *testing.T) {
	catalog := newTestCatalog(t)

	lower := catalog.ByCategory("unisex")
	upper := catalog.ByCategory("Unisex")
	assert.Equal(t, upper, lower)
	assert.NotEmpty(t, lower)

	assert.Len(t, catalog.ByCategory(""), len(catalog.List()))
}

func TestCatalogFeatured(t *testing.T) {
	catalog := newTestCatalog(t)

	for _, p := range catalog.Featured() {
		assert.True(t, p.Featured, "product %s should be featured", p.ID)
	}
}

func TestSetPriceParsesRawInput(t *testing.T) {
	catalog := newTestCatalog(t)

	catalog.SetPrice("1", "199.50")
	p, _ := catalog.Get("1")
	assert.Equal(t, 199.50, p.Price)

	catalog.SetPrice("1", " 210 ")
	p, _ = catalog.Get("1")
	assert.Equal(t, 210.0, p.Price)
}

func TestSetPriceIgnoresGarbage(t *testing.T) {
	catalog := newTestCatalog(t)
	before, _ := catalog.Get("1")

	for _, raw := range []string{"abc", "", "12.3.4", "NaN", "Inf", "-Inf"} {
		catalog.SetPrice("1", raw)
		after, _ := catalog.Get("1")
		assert.Equal(t, before.Price, after.Price, "input %q must not change the price", raw)
	}
}

func TestSetStockStatus(t *testing.T) {
	catalog := newTestCatalog(t)

	catalog.SetStockStatus("1", models.StockOutOfStk)
	p, _ := catalog.Get("1")
	assert.Equal(t, models.StockOutOfStk, p.StockStatus)
}

func TestUpsertReplacesExistingWholesale(t *testing.T) {
	catalog := newTestCatalog(t)
	count := len(catalog.List())

	saved := catalog.Upsert(models.Product{ID: "1", Name: "Renamed", Price: 99})
	assert.Equal(t, "1", saved.ID)

	p, _ := catalog.Get("1")
	assert.Equal(t, "Renamed", p.Name)
	assert.Equal(t, 99.0, p.Price)
	assert.Len(t, catalog.List(), count)
}

func TestUpsertAssignsIDAndDefaultStock(t *testing.T) {
	catalog := newTestCatalog(t)
	count := len(catalog.List())

	saved := catalog.Upsert(models.Product{Name: "Nouveau", Price: 150})
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, models.StockInStock, saved.StockStatus)
	assert.Len(t, catalog.List(), count+1)
}

func TestDeleteIsIdempotent(t *testing.T) {
	catalog := newTestCatalog(t)
	count := len(catalog.List())

	catalog.Delete("1")
	assert.Len(t, catalog.List(), count-1)

	catalog.Delete("1")
	assert.Len(t, catalog.List(), count-1)
}
