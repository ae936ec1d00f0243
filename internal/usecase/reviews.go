package usecase

import (
	"context"
	"errors"
	"strings"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/review"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

type CreateReviewInput struct {
	JobID    int64
	ToUserID int64
	Rating   int
	Comment  string
}

// ReviewWithReviewer joins a review with its author for profile pages.
type ReviewWithReviewer struct {
	Review   review.Review
	Reviewer user.User
}

type ReviewService struct {
	store storage.Storage
	cache WorkerCache
}

func NewReviewService(store storage.Storage, cache WorkerCache) *ReviewService {
	return &ReviewService{store: store, cache: cache}
}

// Create files a review for a completed job. The caller must be one of the
// job's parties (the employer or an accepted worker) and the reviewee must
// be a party on the opposite side; each (job, reviewer, reviewee) triple is
// reviewable once.
func (s *ReviewService) Create(ctx context.Context, actor Actor, in CreateReviewInput) (review.Review, error) {
	if !actor.Authenticated() {
		return review.Review{}, ErrNotAuthenticated
	}
	if in.Rating < review.MinRating || in.Rating > review.MaxRating {
		return review.Review{}, ErrValidation
	}
	if in.ToUserID <= 0 || in.ToUserID == actor.UserID {
		return review.Review{}, ErrValidation
	}

	j, err := s.store.GetJob(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, ErrInternal
	}
	if j.Status != job.StatusCompleted {
		return review.Review{}, ErrInvalidState
	}

	accepted, err := s.store.ListApplications(ctx, application.Query{JobID: j.ID, Status: application.StatusAccepted})
	if err != nil {
		return review.Review{}, ErrInternal
	}

	switch {
	case actor.UserID == j.EmployerID:
		if !isAcceptedWorker(accepted, in.ToUserID) {
			return review.Review{}, ErrNotAuthorized
		}
	case isAcceptedWorker(accepted, actor.UserID):
		if in.ToUserID != j.EmployerID {
			return review.Review{}, ErrNotAuthorized
		}
	default:
		return review.Review{}, ErrNotAuthorized
	}

	// Triple uniqueness is the store's to enforce; a racing duplicate
	// surfaces here as storage.ErrDuplicate.
	created, err := s.store.CreateReview(ctx, review.Insert{
		JobID:      in.JobID,
		FromUserID: actor.UserID,
		ToUserID:   in.ToUserID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return review.Review{}, ErrDuplicate
		}
		return review.Review{}, ErrInternal
	}

	// The reviewee's aggregate changed; drop the cached leaderboards.
	if s.cache != nil {
		_ = s.cache.DeleteByPattern(ctx, topRatedKeyPattern)
	}
	return created, nil
}

// UserReviews lists reviews addressed to a user, newest first, each with its
// author attached.
func (s *ReviewService) UserReviews(ctx context.Context, userID int64) ([]ReviewWithReviewer, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}

	reviews, err := s.store.ListReviews(ctx, review.Query{ToUserID: userID})
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ReviewWithReviewer, 0, len(reviews))
	for _, r := range reviews {
		reviewer, err := s.store.GetUser(ctx, r.FromUserID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInternal
		}
		out = append(out, ReviewWithReviewer{Review: r, Reviewer: sanitizeUser(reviewer)})
	}
	return out, nil
}

func isAcceptedWorker(accepted []application.Application, userID int64) bool {
	for _, a := range accepted {
		if a.WorkerID == userID {
			return true
		}
	}
	return false
}
