package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	userCookieName  = "gamestore-session"
	adminCookieName = "gamestore-admin-session"

	userIDSessionKey  = "userID"
	adminIDSessionKey = "adminID"
)

// SessionStore carries two independent principals. The customer cookie and
// the admin cookie never share state: logging out of one leaves the other
// untouched.
type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error

	GetAdminID(r *http.Request) string
	SetAdminID(w http.ResponseWriter, r *http.Request, adminID string) error
	ClearAdminID(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request, name string) *sessions.Session {
	session, err := c.store.Get(r, name)
	if err != nil {
		logrus.Warnf("Error getting session %s: %v", name, err)
	}
	return session
}

func (c *CookieSessionStore) getID(r *http.Request, cookieName, key string) string {
	session := c.getSession(r, cookieName)
	if session == nil {
		return ""
	}
	id, ok := session.Values[key].(string)
	if !ok {
		return ""
	}
	return id
}

func (c *CookieSessionStore) setID(w http.ResponseWriter, r *http.Request, cookieName, key, id string) error {
	session := c.getSession(r, cookieName)
	if session == nil {
		return nil
	}
	session.Values[key] = id
	return session.Save(r, w)
}

func (c *CookieSessionStore) clearID(w http.ResponseWriter, r *http.Request, cookieName, key string) error {
	session := c.getSession(r, cookieName)
	if session == nil {
		return nil
	}
	delete(session.Values, key)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	return c.getID(r, userCookieName, userIDSessionKey)
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	return c.setID(w, r, userCookieName, userIDSessionKey, userID)
}

func (c *CookieSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	return c.clearID(w, r, userCookieName, userIDSessionKey)
}

func (c *CookieSessionStore) GetAdminID(r *http.Request) string {
	return c.getID(r, adminCookieName, adminIDSessionKey)
}

func (c *CookieSessionStore) SetAdminID(w http.ResponseWriter, r *http.Request, adminID string) error {
	return c.setID(w, r, adminCookieName, adminIDSessionKey, adminID)
}

func (c *CookieSessionStore) ClearAdminID(w http.ResponseWriter, r *http.Request) error {
	return c.clearID(w, r, adminCookieName, adminIDSessionKey)
}
