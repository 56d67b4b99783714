package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/prasetiyohadi/go-gamestore/app/utils/sessions"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type RegisterForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
}

type AuthHandler struct {
	userRepo     repositories.UserRepositoryImpl
	adminRepo    repositories.AdminRepositoryImpl
	sessionStore sessions.SessionStore
	validator    *validator.Validate
	render       *render.Render
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, adminRepo repositories.AdminRepositoryImpl, sessionStore sessions.SessionStore, r *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		sessionStore: sessionStore,
		validator:    validator.New(),
		render:       r,
	}
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "login", datas)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		logrus.Errorf("LoginPost: failed to look up user %s: %v", email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Login failed. Please try again."), http.StatusSeeOther)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(password)) {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Invalid email or password."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		logrus.Errorf("LoginPost: failed to save session for user %s: %v", user.ID, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Login failed. Please try again."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("Welcome back, "+user.FirstName+"!"), http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Register",
	})
	_ = h.render.HTML(w, http.StatusOK, "register", datas)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read form", http.StatusBadRequest)
		return
	}

	form := RegisterForm{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
	}

	if err := h.validator.Struct(&form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, msg := range helpers.FormatValidationErrors(validationErrs) {
				http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape(msg), http.StatusSeeOther)
				return
			}
		}
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Invalid form."), http.StatusSeeOther)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		logrus.Errorf("RegisterPost: failed to check email %s: %v", form.Email, err)
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Registration failed. Please try again."), http.StatusSeeOther)
		return
	}
	if existing != nil {
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Email is already registered."), http.StatusSeeOther)
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		logrus.Errorf("RegisterPost: failed to create user %s: %v", form.Email, err)
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Registration failed. Please try again."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		logrus.Errorf("RegisterPost: failed to save session for user %s: %v", user.ID, err)
	}

	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("Welcome, "+user.FirstName+"!"), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearUserID(w, r); err != nil {
		logrus.Errorf("Logout: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("You have been logged out."), http.StatusSeeOther)
}

func (h *AuthHandler) AdminLoginGet(w http.ResponseWriter, r *http.Request) {
	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Admin Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "admin_login", datas)
}

func (h *AuthHandler) AdminLoginPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	admin, err := h.adminRepo.FindByEmail(r.Context(), email)
	if err != nil {
		logrus.Errorf("AdminLoginPost: failed to look up admin %s: %v", email, err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Login failed. Please try again."), http.StatusSeeOther)
		return
	}
	if admin == nil || !helpers.PasswordCompare(admin.Password, []byte(password)) {
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Invalid email or password."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetAdminID(w, r, admin.ID); err != nil {
		logrus.Errorf("AdminLoginPost: failed to save session for admin %s: %v", admin.ID, err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Login failed. Please try again."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearAdminID(w, r); err != nil {
		logrus.Errorf("AdminLogout: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/admin/login?status=success&message="+url.QueryEscape("You have been logged out."), http.StatusSeeOther)
}
