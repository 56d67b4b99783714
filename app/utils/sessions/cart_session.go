package sessions

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/sirupsen/logrus"
)

const (
	cartCookieName = "gamestore-cart"
	cartSessionKey = "cart"
)

func init() {
	gob.Register(&models.Cart{})
	gob.Register(models.CartLine{})
}

// CartStore keeps the whole cart inside the visitor's cookie session. The
// cart is the one piece of state that is never persisted durably.
type CartStore interface {
	Get(r *http.Request) *models.Cart
	Save(w http.ResponseWriter, r *http.Request, cart *models.Cart) error
}

type CookieCartStore struct {
	store *sessions.CookieStore
}

func NewCookieCartStore(keyPairs ...[]byte) *CookieCartStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieCartStore{store: store}
}

// Get never fails: a missing or undecodable session just yields a fresh
// empty cart.
func (c *CookieCartStore) Get(r *http.Request) *models.Cart {
	session, err := c.store.Get(r, cartCookieName)
	if err != nil {
		logrus.Warnf("Error getting cart session: %v", err)
		return models.NewCart()
	}

	cart, ok := session.Values[cartSessionKey].(*models.Cart)
	if !ok || cart == nil || cart.Lines == nil {
		return models.NewCart()
	}
	return cart
}

func (c *CookieCartStore) Save(w http.ResponseWriter, r *http.Request, cart *models.Cart) error {
	session, err := c.store.Get(r, cartCookieName)
	if err != nil {
		logrus.Warnf("Error getting cart session for save: %v", err)
		session, err = c.store.New(r, cartCookieName)
		if err != nil {
			return err
		}
	}
	session.Values[cartSessionKey] = cart
	return session.Save(r, w)
}
