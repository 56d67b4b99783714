package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartStore() *CookieCartStore {
	return NewCookieCartStore(
		securecookie.GenerateRandomKey(64),
		securecookie.GenerateRandomKey(32),
	)
}

func TestCartStoreGetWithoutCookie(t *testing.T) {
	store := newTestCartStore()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	cart := store.Get(r)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Lines)
}

func TestCartStoreRoundtrip(t *testing.T) {
	store := newTestCartStore()

	cart := models.NewCart()
	cart.Add(models.CartLine{
		GameID: "g1",
		Name:   "Chrono Saga",
		Slug:   "chrono-saga",
		Price:  decimal.RequireFromString("19.99"),
		Qty:    2,
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/carts/add", nil)
	require.NoError(t, store.Save(w, r, cart))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	r2 := httptest.NewRequest(http.MethodGet, "/carts", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}

	got := store.Get(r2)
	require.Len(t, got.Lines, 1)
	line := got.Lines["g1"]
	assert.Equal(t, "Chrono Saga", line.Name)
	assert.Equal(t, 2, line.Qty)
	assert.True(t, line.Price.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, got.Total().Equal(decimal.RequireFromString("39.98")))
}

func TestCartStoreGetWithGarbageCookie(t *testing.T) {
	store := newTestCartStore()

	r := httptest.NewRequest(http.MethodGet, "/carts", nil)
	r.AddCookie(&http.Cookie{Name: "gamestore-cart", Value: "not-a-session"})

	cart := store.Get(r)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}
