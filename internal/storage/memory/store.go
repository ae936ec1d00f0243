// Package memory is the default Storage driver: five entity maps with
// per-type id counters behind a single mutex. Individual store operations
// are serialized by that lock, and the uniqueness rules (username,
// one application per (job, worker), one review per triple) are enforced
// inside the create operations themselves, so concurrent creates of the
// same key cannot both succeed. Rule-layer sequences spanning several
// store calls get no such serialization and must not rely on it.
package memory

import (
	"context"
	"sync"
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/message"
	"laborlink/internal/domain/review"
	"laborlink/internal/domain/user"
)

type Store struct {
	mu sync.RWMutex

	users        map[int64]user.User
	jobs         map[int64]job.Job
	applications map[int64]application.Application
	reviews      map[int64]review.Review
	messages     map[int64]message.Message

	userID        int64
	jobID         int64
	applicationID int64
	reviewID      int64
	messageID     int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]user.User),
		jobs:         make(map[int64]job.Job),
		applications: make(map[int64]application.Application),
		reviews:      make(map[int64]review.Review),
		messages:     make(map[int64]message.Message),
		now:          time.Now,
	}
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u user.User) user.User {
	u.Skills = copyStrings(u.Skills)
	u.Rating = copyIntPtr(u.Rating)
	return u
}

func cloneJob(j job.Job) job.Job {
	j.Skills = copyStrings(j.Skills)
	return j
}

func skillsOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// newestFirst orders by CreatedAt descending, breaking ties by id ascending
// since timestamps may coincide within the same instant.
func newestFirst(aAt, bAt time.Time, aID, bID int64) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID < bID
}

// oldestFirst is the chronological conversation order.
func oldestFirst(aAt, bAt time.Time, aID, bID int64) bool {
	if !aAt.Equal(bAt) {
		return aAt.Before(bAt)
	}
	return aID < bID
}
