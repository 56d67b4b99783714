package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/prasetiyohadi/go-gamestore/app/utils/images"
	"github.com/sirupsen/logrus"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrForceRequired guards the irreversible delete path: callers must
	// pass the explicit force flag, it is never the default.
	ErrForceRequired = errors.New("hard delete requires the force flag")
)

type ReviewForm struct {
	Review string `validate:"required,max=500"`
	Rating int    `validate:"required,min=1,max=5"`
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryImpl
	validator  *validator.Validate
	imageDir   string
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryImpl, imageDir string) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		validator:  validator.New(),
		imageDir:   imageDir,
	}
}

// Submit validates and stores a new review. When an image is attached it is
// normalized to a size-capped derivative before the row is written, so a bad
// upload never leaves a half-created review behind.
func (s *ReviewService) Submit(ctx context.Context, userID, text string, rating int, imageFile io.ReadSeeker, imageSize int64) (*models.Review, error) {
	form := ReviewForm{Review: text, Rating: rating}
	if err := s.validator.Struct(&form); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID: userID,
		Review: text,
		Rating: rating,
	}

	if imageFile != nil {
		path, err := images.SaveResized(imageFile, imageSize, s.imageDir)
		if err != nil {
			return nil, fmt.Errorf("failed to store review image: %w", err)
		}
		review.Image = &path
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// List returns non-deleted reviews, newest first, with their authors.
func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.GetAll(ctx)
}

// ListAll is the moderation view and includes soft-deleted reviews.
func (s *ReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.GetAllUnscoped(ctx)
}

// Update re-validates and rewrites the text and rating. Soft-deleted reviews
// can still be edited by moderators.
func (s *ReviewService) Update(ctx context.Context, reviewID, text string, rating int) (*models.Review, error) {
	form := ReviewForm{Review: text, Rating: rating}
	if err := s.validator.Struct(&form); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByIDUnscoped(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	review.Review = text
	review.Rating = rating
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review %s: %w", reviewID, err)
	}
	return review, nil
}

// SoftDelete tombstones the review; the row stays and can be restored.
func (s *ReviewService) SoftDelete(ctx context.Context, reviewID string) error {
	review, err := s.reviewRepo.FindByIDUnscoped(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to fetch review %s: %w", reviewID, err)
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.SoftDelete(ctx, reviewID)
}

// Restore clears the tombstone. Restoring an already-active review is a
// no-op, not an error; restoring a review that never existed is NotFound.
func (s *ReviewService) Restore(ctx context.Context, reviewID string) error {
	review, err := s.reviewRepo.FindByIDUnscoped(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to fetch review %s: %w", reviewID, err)
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Restore(ctx, reviewID)
}

// HardDelete physically erases the row. Distinct from SoftDelete and gated
// by the caller's explicit force flag.
func (s *ReviewService) HardDelete(ctx context.Context, reviewID string, force bool) error {
	if !force {
		return ErrForceRequired
	}

	review, err := s.reviewRepo.FindByIDUnscoped(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to fetch review %s: %w", reviewID, err)
	}
	if review == nil {
		return ErrReviewNotFound
	}

	logrus.Warnf("Force-deleting review %s by user %s", review.ID, review.UserID)
	return s.reviewRepo.HardDelete(ctx, reviewID)
}
