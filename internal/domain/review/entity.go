package review

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a one-shot rating from one party of a completed job to the
// other. At most one review exists per (job, reviewer, reviewee) triple.
type Review struct {
	ID         int64
	JobID      int64
	FromUserID int64
	ToUserID   int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

type Insert struct {
	JobID      int64
	FromUserID int64
	ToUserID   int64
	Rating     int
	Comment    string
}

// Query filters the review listing. Zero values mean "any".
type Query struct {
	JobID      int64
	FromUserID int64
	ToUserID   int64
}
