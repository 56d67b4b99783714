package middlewares

import (
	"context"
	"net/http"
	"net/url"

	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/prasetiyohadi/go-gamestore/app/utils/sessions"
	"github.com/sirupsen/logrus"
)

// AdminAuthMiddleware guards the back office. Admin sessions live in their
// own cookie; a logged-in customer is not an admin.
func AdminAuthMiddleware(adminRepo repositories.AdminRepositoryImpl, sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sessionStore.GetAdminID(r)
			if adminID == "" {
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("You must log in to access the admin panel."), http.StatusFound)
				return
			}

			admin, err := adminRepo.FindByID(r.Context(), adminID)
			if err != nil || admin == nil {
				logrus.Warnf("AdminAuthMiddleware: admin %s not found or lookup failed: %v", adminID, err)
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Admin session is no longer valid."), http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyAdminID, admin.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
