// Package storage defines the authoritative registry for the five
// marketplace entity types. The store is deliberately dumb: it assigns ids,
// stamps server-owned defaults, merges partial updates and answers typed
// queries, but enforces no authorization or state-machine rules. The one
// exception is review creation, which recomputes the reviewee's aggregate
// rating — that side effect is intrinsic to what a review means, not a
// request-layer policy.
package storage

import (
	"context"
	"errors"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/message"
	"laborlink/internal/domain/review"
	"laborlink/internal/domain/user"
)

var (
	// ErrNotFound signals absence. Absence is a normal outcome; callers map
	// it to their own taxonomy.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate signals a create that would violate a uniqueness rule:
	// username for users, (job, worker) for applications and
	// (job, reviewer, reviewee) for reviews. The store enforces these inside
	// the create operation itself so the check-and-insert cannot interleave
	// with a concurrent create of the same key.
	ErrDuplicate = errors.New("entity already exists")
)

// Conversation pairs the other participant of a message thread with the
// most recent message exchanged with them.
type Conversation struct {
	OtherUser   user.User
	LastMessage message.Message
}

// Storage is implemented by the memory driver and, optionally, the Postgres
// driver. All returned entities are value snapshots; mutating them does not
// affect stored state.
//
// Ordering guarantees: jobs, applications and reviews list newest first
// (CreatedAt descending, id ascending on ties); conversations list messages
// oldest first. Zero-valued query fields mean "any".
type Storage interface {
	// CreateUser rejects an already-taken username with ErrDuplicate.
	CreateUser(ctx context.Context, in user.Insert) (user.User, error)
	GetUser(ctx context.Context, id int64) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
	UpdateUser(ctx context.Context, id int64, upd user.Update) (user.User, error)
	ListWorkers(ctx context.Context) ([]user.User, error)
	TopRatedWorkers(ctx context.Context, limit int) ([]user.User, error)

	CreateJob(ctx context.Context, in job.Insert) (job.Job, error)
	GetJob(ctx context.Context, id int64) (job.Job, error)
	UpdateJob(ctx context.Context, id int64, upd job.Update) (job.Job, error)
	ListJobs(ctx context.Context, q job.Query) ([]job.Job, error)

	// CreateApplication rejects a second application for the same
	// (job, worker) pair with ErrDuplicate, whatever the first one's status.
	CreateApplication(ctx context.Context, in application.Insert) (application.Application, error)
	GetApplication(ctx context.Context, id int64) (application.Application, error)
	UpdateApplication(ctx context.Context, id int64, upd application.Update) (application.Application, error)
	ListApplications(ctx context.Context, q application.Query) ([]application.Application, error)

	// CreateReview stores the review and, in the same serialized operation,
	// recomputes the reviewee's rating (rounded mean) and review count. A
	// repeat of an existing (job, reviewer, reviewee) triple is ErrDuplicate.
	CreateReview(ctx context.Context, in review.Insert) (review.Review, error)
	GetReview(ctx context.Context, id int64) (review.Review, error)
	ListReviews(ctx context.Context, q review.Query) ([]review.Review, error)

	CreateMessage(ctx context.Context, in message.Insert) (message.Message, error)
	GetMessage(ctx context.Context, id int64) (message.Message, error)
	MarkMessageRead(ctx context.Context, id int64) error
	UserConversations(ctx context.Context, userID int64) ([]Conversation, error)
	Conversation(ctx context.Context, userA, userB int64) ([]message.Message, error)

	Ping(ctx context.Context) error
	Close() error
}
