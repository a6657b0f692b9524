package cart_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	state := store.Init(persistence.NewMemoryAdapter())
	state.Catalog.Replace(store.DefaultProducts())

	router := gin.New()
	router.PATCH("/store/cart/items/:id", UpdateQuantity)
	return router
}

func patchQuantity(router *gin.Engine, session, productID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/store/cart/items/"+productID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: session})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateQuantityAcceptsZero(t *testing.T) {
	router := newCartRouter(t)
	cart := store.Get().Carts.Session("s1")
	cart.AddItem("1")

	// Zero must pass binding and no-op in the aggregate, same as a negative.
	rec := patchQuantity(router, "s1", "1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	rec = patchQuantity(router, "s1", "1", `{"quantity":-3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	rec = patchQuantity(router, "s1", "1", `{"quantity":4}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, cart.Lines()[0].Quantity)
}

func TestUpdateQuantityRequiresField(t *testing.T) {
	router := newCartRouter(t)
	store.Get().Carts.Session("s1").AddItem("1")

	rec := patchQuantity(router, "s1", "1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuantityConflictsDuringProcessing(t *testing.T) {
	router := newCartRouter(t)
	cart := store.Get().Carts.Session("s1")
	cart.AddItem("1")
	require.NoError(t, cart.BeginShipping())
	require.NoError(t, cart.SubmitShipping("Élise", "Paris"))

	rec := patchQuantity(router, "s1", "1", `{"quantity":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
