package usecase

import (
	"context"
	"errors"
	"testing"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

// setupCompletedJob seeds a job with an accepted worker and moves it to
// completed, the only state reviews are allowed in.
func setupCompletedJob(t *testing.T) (st storage.Storage, employer, worker user.User, j job.Job) {
	t.Helper()
	s := newTestStorage(t)
	employer = seedUser(t, s, "employer", user.TypeEmployer)
	worker = seedUser(t, s, "worker", user.TypeWorker)
	j = seedJob(t, s, employer.ID)
	a := seedApplication(t, s, j.ID, worker.ID)
	accepted := application.StatusAccepted
	if _, err := s.UpdateApplication(context.Background(), a.ID, application.Update{Status: &accepted}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	setJobStatus(t, s, j.ID, job.StatusCompleted)
	return s, employer, worker, j
}

func TestReviewService_Create_RequiresCompletedJob(t *testing.T) {
	st := newTestStorage(t)
	svc := NewReviewService(st, nil)
	employer := seedUser(t, st, "employer", user.TypeEmployer)
	worker := seedUser(t, st, "worker", user.TypeWorker)
	j := seedJob(t, st, employer.ID)

	_, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: worker.ID, Rating: 5,
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("open job: expected ErrInvalidState, got %v", err)
	}
}

func TestReviewService_Create_PartiesOnly(t *testing.T) {
	st, employer, worker, j := setupCompletedJob(t)
	svc := NewReviewService(st, nil)
	stranger := seedUser(t, st, "stranger", user.TypeWorker)

	if _, err := svc.Create(context.Background(), actorFor(stranger), CreateReviewInput{
		JobID: j.ID, ToUserID: employer.ID, Rating: 4,
	}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("stranger: expected ErrNotAuthorized, got %v", err)
	}

	// The employer may only review the accepted worker.
	if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: stranger.ID, Rating: 4,
	}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("employer->stranger: expected ErrNotAuthorized, got %v", err)
	}

	// The worker may only review the employer.
	if _, err := svc.Create(context.Background(), actorFor(worker), CreateReviewInput{
		JobID: j.ID, ToUserID: stranger.ID, Rating: 4,
	}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("worker->stranger: expected ErrNotAuthorized, got %v", err)
	}

	if _, err := svc.Create(context.Background(), actorFor(worker), CreateReviewInput{
		JobID: j.ID, ToUserID: employer.ID, Rating: 4,
	}); err != nil {
		t.Fatalf("worker->employer: %v", err)
	}
}

func TestReviewService_Create_OncePerTriple(t *testing.T) {
	st, employer, worker, j := setupCompletedJob(t)
	svc := NewReviewService(st, nil)

	if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: worker.ID, Rating: 5,
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: worker.ID, Rating: 1,
	}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second review: expected ErrDuplicate, got %v", err)
	}
}

func TestReviewService_Create_RatingBoundsAndSelf(t *testing.T) {
	st, employer, worker, j := setupCompletedJob(t)
	svc := NewReviewService(st, nil)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
			JobID: j.ID, ToUserID: worker.ID, Rating: rating,
		}); !errors.Is(err, ErrValidation) {
			t.Fatalf("rating %d: expected ErrValidation, got %v", rating, err)
		}
	}
	if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: employer.ID, Rating: 3,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("self review: expected ErrValidation, got %v", err)
	}
}

func TestReviewService_Create_UpdatesAggregateAndCache(t *testing.T) {
	st, employer, worker, j := setupCompletedJob(t)
	cache := newRecordingCache()
	svc := NewReviewService(st, cache)

	if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: worker.ID, Rating: 5, Comment: "great work",
	}); err != nil {
		t.Fatalf("review: %v", err)
	}

	u, err := st.GetUser(context.Background(), worker.ID)
	if err != nil {
		t.Fatalf("get worker: %v", err)
	}
	if u.Rating == nil || *u.Rating != 5 || u.ReviewCount != 1 {
		t.Fatalf("aggregate = %v/%d, want 5/1", u.Rating, u.ReviewCount)
	}
	if len(cache.deletes) != 1 {
		t.Fatalf("expected one cache invalidation, got %d", len(cache.deletes))
	}
}

func TestReviewService_UserReviews(t *testing.T) {
	st, employer, worker, j := setupCompletedJob(t)
	svc := NewReviewService(st, nil)

	if _, err := svc.Create(context.Background(), actorFor(employer), CreateReviewInput{
		JobID: j.ID, ToUserID: worker.ID, Rating: 4, Comment: "solid",
	}); err != nil {
		t.Fatalf("review: %v", err)
	}

	items, err := svc.UserReviews(context.Background(), worker.ID)
	if err != nil {
		t.Fatalf("user reviews: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 review, got %d", len(items))
	}
	if items[0].Reviewer.ID != employer.ID {
		t.Fatalf("reviewer not joined")
	}
	if items[0].Reviewer.PasswordHash != "" {
		t.Fatalf("password hash leaked in reviewer")
	}

	if _, err := svc.UserReviews(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user: expected ErrNotFound, got %v", err)
	}
}
