package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/sirupsen/logrus"
)

// GetReviewsPage is the moderation queue: soft-deleted reviews stay visible
// here so they can be restored or force-deleted.
func (h *AdminHandler) GetReviewsPage(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewSvc.ListAll(r.Context())
	if err != nil {
		logrus.Errorf("GetReviewsPage: failed to load reviews: %v", err)
		http.Redirect(w, r, "/admin/dashboard?status=error&message="+url.QueryEscape("Failed to load reviews."), http.StatusSeeOther)
		return
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title":   "Review Moderation",
		"reviews": reviews,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/reviews/index", datas)
}

func (h *AdminHandler) UpdateReviewPost(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["id"]

	text := r.FormValue("review")
	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil {
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Rating must be a number between 1 and 5."), http.StatusSeeOther)
		return
	}

	if _, err := h.reviewSvc.Update(r.Context(), reviewID, text, rating); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Review not found."), http.StatusSeeOther)
			return
		}
		logrus.Errorf("UpdateReviewPost: failed to update review %s: %v", reviewID, err)
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Failed to update review."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/reviews?status=success&message="+url.QueryEscape("Review updated."), http.StatusSeeOther)
}

func (h *AdminHandler) SoftDeleteReviewPost(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["id"]

	if err := h.reviewSvc.SoftDelete(r.Context(), reviewID); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Review not found."), http.StatusSeeOther)
			return
		}
		logrus.Errorf("SoftDeleteReviewPost: failed to hide review %s: %v", reviewID, err)
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Failed to hide review."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/reviews?status=success&message="+url.QueryEscape("Review hidden."), http.StatusSeeOther)
}

func (h *AdminHandler) RestoreReviewPost(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["id"]

	if err := h.reviewSvc.Restore(r.Context(), reviewID); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Review not found."), http.StatusSeeOther)
			return
		}
		logrus.Errorf("RestoreReviewPost: failed to restore review %s: %v", reviewID, err)
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Failed to restore review."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/reviews?status=success&message="+url.QueryEscape("Review restored."), http.StatusSeeOther)
}

// HardDeleteReviewPost erases the row for good. The form must post force=true;
// anything else is rejected so the destructive path is always an explicit
// choice.
func (h *AdminHandler) HardDeleteReviewPost(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["id"]
	force := r.FormValue("force") == "true"

	err := h.reviewSvc.HardDelete(r.Context(), reviewID, force)
	switch {
	case err == nil:
		http.Redirect(w, r, "/admin/reviews?status=success&message="+url.QueryEscape("Review permanently deleted."), http.StatusSeeOther)
	case errors.Is(err, services.ErrForceRequired):
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Permanent deletion requires confirmation."), http.StatusSeeOther)
	case errors.Is(err, services.ErrReviewNotFound):
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Review not found."), http.StatusSeeOther)
	default:
		logrus.Errorf("HardDeleteReviewPost: failed to delete review %s: %v", reviewID, err)
		http.Redirect(w, r, "/admin/reviews?status=error&message="+url.QueryEscape("Failed to delete review."), http.StatusSeeOther)
	}
}
