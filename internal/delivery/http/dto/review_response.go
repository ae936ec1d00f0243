package dto

import (
	"time"

	"laborlink/internal/domain/review"
	"laborlink/internal/usecase"
)

type ReviewResponse struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"job_id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewWithReviewerResponse struct {
	ReviewResponse
	Reviewer UserResponse `json:"reviewer"`
}

func FromReview(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		JobID:      r.JobID,
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

func FromReviewsWithReviewer(items []usecase.ReviewWithReviewer) []ReviewWithReviewerResponse {
	out := make([]ReviewWithReviewerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ReviewWithReviewerResponse{
			ReviewResponse: FromReview(it.Review),
			Reviewer:       FromUser(it.Reviewer),
		})
	}
	return out
}
