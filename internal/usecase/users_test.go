package usecase

import (
	"context"
	"errors"
	"testing"

	"laborlink/internal/domain/user"
)

func TestUserService_Get(t *testing.T) {
	st := newTestStorage(t)
	svc := NewUserService(st, nil)
	u := seedUser(t, st, "maria", user.TypeWorker)

	got, err := svc.Get(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user: expected ErrNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_SelfOnly(t *testing.T) {
	st := newTestStorage(t)
	svc := NewUserService(st, nil)
	a := seedUser(t, st, "a", user.TypeWorker)
	b := seedUser(t, st, "b", user.TypeWorker)

	bio := "new bio"
	if _, err := svc.UpdateProfile(context.Background(), actorFor(a), b.ID, UpdateProfileInput{Bio: &bio}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("foreign profile: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), actorFor(a), a.ID, UpdateProfileInput{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty update: expected ErrValidation, got %v", err)
	}

	got, err := svc.UpdateProfile(context.Background(), actorFor(a), a.ID, UpdateProfileInput{Bio: &bio, Skills: []string{"cleaning"}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Bio != "new bio" || len(got.Skills) != 1 {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Username != "a" {
		t.Fatalf("untouched field changed")
	}
}

func TestUserService_UpdateProfile_InvalidatesCache(t *testing.T) {
	st := newTestStorage(t)
	cache := newRecordingCache()
	svc := NewUserService(st, cache)
	a := seedUser(t, st, "a", user.TypeWorker)

	bio := "new bio"
	if _, err := svc.UpdateProfile(context.Background(), actorFor(a), a.ID, UpdateProfileInput{Bio: &bio}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(cache.deletes) != 1 {
		t.Fatalf("expected one invalidation, got %d", len(cache.deletes))
	}
}

func TestUserService_ListWorkers_ExcludesEmployers(t *testing.T) {
	st := newTestStorage(t)
	svc := NewUserService(st, nil)
	seedUser(t, st, "w1", user.TypeWorker)
	seedUser(t, st, "e1", user.TypeEmployer)
	seedUser(t, st, "w2", user.TypeWorker)

	workers, err := svc.ListWorkers(context.Background())
	if err != nil {
		t.Fatalf("list workers: %v", err)
	}
	if len(workers) != 2 {
		t.Fatalf("expected 2 workers, got %d", len(workers))
	}
	for _, w := range workers {
		if w.Type != user.TypeWorker {
			t.Fatalf("employer in worker listing")
		}
		if w.PasswordHash != "" {
			t.Fatalf("password hash leaked")
		}
	}
}

func TestUserService_TopRatedWorkers_CacheRoundTrip(t *testing.T) {
	st := newTestStorage(t)
	cache := newRecordingCache()
	svc := NewUserService(st, cache)
	seedUser(t, st, "w1", user.TypeWorker)
	seedUser(t, st, "w2", user.TypeWorker)

	first, err := svc.TopRatedWorkers(context.Background(), 4)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if len(cache.sets) != 1 {
		t.Fatalf("expected cache fill, got %d sets", len(cache.sets))
	}

	second, err := svc.TopRatedWorkers(context.Background(), 4)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(cache.sets) != 1 {
		t.Fatalf("cache hit should not refill, got %d sets", len(cache.sets))
	}
	if len(first) != len(second) {
		t.Fatalf("cached result differs")
	}

	if _, err := svc.TopRatedWorkers(context.Background(), 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("limit 0: expected ErrValidation, got %v", err)
	}
}
