package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/services"
	"github.com/prasetiyohadi/go-gamestore/app/utils/images"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	reviewSvc *services.ReviewService
	render    *render.Render
}

func NewReviewHandler(reviewSvc *services.ReviewService, r *render.Render) *ReviewHandler {
	return &ReviewHandler{
		reviewSvc: reviewSvc,
		render:    r,
	}
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewSvc.List(r.Context())
	if err != nil {
		logrus.Errorf("GetReviews: failed to load reviews: %v", err)
		http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Failed to load reviews."), http.StatusSeeOther)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":   "Reviews",
		"reviews": reviews,
	})
	_ = h.render.HTML(w, http.StatusOK, "reviews", datas)
}

func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseMultipartForm(images.MaxUploadBytes); err != nil {
		http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape("Failed to read form."), http.StatusSeeOther)
		return
	}

	text := r.FormValue("review")
	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil {
		http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape("Rating must be a number between 1 and 5."), http.StatusSeeOther)
		return
	}

	var (
		imageFile io.ReadSeeker
		imageSize int64
	)
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		imageFile = file
		imageSize = header.Size
	} else if !errors.Is(err, http.ErrMissingFile) {
		http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape("Failed to read image upload."), http.StatusSeeOther)
		return
	}

	if _, err := h.reviewSvc.Submit(r.Context(), userID, text, rating, imageFile, imageSize); err != nil {
		switch {
		case errors.Is(err, images.ErrImageTooLarge):
			http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape("Image must be 2MB or smaller."), http.StatusSeeOther)
		case errors.Is(err, images.ErrUnsupportedImage):
			http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape("Image must be a JPEG, PNG or GIF."), http.StatusSeeOther)
		default:
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				for _, msg := range helpers.FormatValidationErrors(validationErrs) {
					http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape(msg), http.StatusSeeOther)
					return
				}
			}
			logrus.Errorf("SubmitReview: failed for user %s: %v", userID, err)
			http.Redirect(w, r, "/reviews?status=error&message="+url.QueryEscape("Failed to submit review."), http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, "/reviews?status=success&message="+url.QueryEscape("Thanks for your review!"), http.StatusSeeOther)
}
