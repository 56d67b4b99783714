package middlewares

import (
	"context"
	"net/http"
	"net/url"

	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/utils/sessions"
)

// UserContextMiddleware copies the session principal into the request
// context so handlers never touch the cookie store directly.
func UserContextMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := sessionStore.GetUserID(r); userID != "" {
				ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CartCountMiddleware exposes the session cart's item count to every page.
func CartCountMiddleware(cartStore sessions.CartStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cart := cartStore.Get(r)
			ctx := context.WithValue(r.Context(), helpers.CartCountKey, cart.Count())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser guards customer-only routes.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
		if !ok || userID == "" {
			http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must log in first."), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
