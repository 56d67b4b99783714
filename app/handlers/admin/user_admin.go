package admin

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func (h *AdminHandler) GetUsersPage(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAllUsers(r.Context())
	if err != nil {
		logrus.Errorf("GetUsersPage: failed to load users: %v", err)
		http.Redirect(w, r, "/admin/dashboard?status=error&message="+url.QueryEscape("Failed to load users."), http.StatusSeeOther)
		return
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title": "User Management",
		"users": users,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/users/index", datas)
}

// DeleteUserPost removes the account permanently. There is no undo.
func (h *AdminHandler) DeleteUserPost(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		logrus.Errorf("DeleteUserPost: failed to load user %s: %v", userID, err)
		http.Redirect(w, r, "/admin/users?status=error&message="+url.QueryEscape("Failed to delete user."), http.StatusSeeOther)
		return
	}
	if user == nil {
		http.Redirect(w, r, "/admin/users?status=error&message="+url.QueryEscape("User not found."), http.StatusSeeOther)
		return
	}

	if err := h.userRepo.DeleteUser(r.Context(), userID); err != nil {
		logrus.Errorf("DeleteUserPost: failed to delete user %s: %v", userID, err)
		http.Redirect(w, r, "/admin/users?status=error&message="+url.QueryEscape("Failed to delete user."), http.StatusSeeOther)
		return
	}

	logrus.Warnf("Admin deleted user %s (%s)", user.ID, user.Email)
	http.Redirect(w, r, "/admin/users?status=success&message="+url.QueryEscape("User deleted."), http.StatusSeeOther)
}
