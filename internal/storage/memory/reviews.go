package memory

import (
	"context"
	"math"
	"sort"

	"laborlink/internal/domain/review"
	"laborlink/internal/storage"
)

// CreateReview inserts the review and recomputes the reviewee's aggregate
// rating under the same lock, so the stored rating always reflects exactly
// the committed review set.
func (s *Store) CreateReview(_ context.Context, in review.Insert) (review.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.JobID == in.JobID && r.FromUserID == in.FromUserID && r.ToUserID == in.ToUserID {
			return review.Review{}, storage.ErrDuplicate
		}
	}

	s.reviewID++
	r := review.Review{
		ID:         s.reviewID,
		JobID:      in.JobID,
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  s.now(),
	}
	s.reviews[r.ID] = r

	s.recomputeRatingLocked(r.ToUserID)
	return r, nil
}

func (s *Store) recomputeRatingLocked(userID int64) {
	u, ok := s.users[userID]
	if !ok {
		return
	}

	sum, count := 0, 0
	for _, r := range s.reviews {
		if r.ToUserID == userID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return
	}

	rating := int(math.Round(float64(sum) / float64(count)))
	u.Rating = &rating
	u.ReviewCount = count
	s.users[userID] = u
}

func (s *Store) GetReview(_ context.Context, id int64) (review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	if !ok {
		return review.Review{}, storage.ErrNotFound
	}
	return r, nil
}

func (s *Store) ListReviews(_ context.Context, q review.Query) ([]review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]review.Review, 0)
	for _, r := range s.reviews {
		if q.JobID != 0 && r.JobID != q.JobID {
			continue
		}
		if q.FromUserID != 0 && r.FromUserID != q.FromUserID {
			continue
		}
		if q.ToUserID != 0 && r.ToUserID != q.ToUserID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, k int) bool {
		return newestFirst(out[i].CreatedAt, out[k].CreatedAt, out[i].ID, out[k].ID)
	})
	return out, nil
}
