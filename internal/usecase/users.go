package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

// WorkerCache caches worker listings. Implementations bypass silently when
// the backing cache is unavailable.
type WorkerCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	topRatedKeyPattern = "workers:top:*"
	topRatedTTL        = 5 * time.Minute
)

type UpdateProfileInput struct {
	Email    *string
	FullName *string
	Location *string
	Bio      *string
	Phone    *string
	Skills   []string
	Avatar   *string
	Title    *string
}

func (in UpdateProfileInput) empty() bool {
	return in.Email == nil && in.FullName == nil && in.Location == nil &&
		in.Bio == nil && in.Phone == nil && in.Skills == nil &&
		in.Avatar == nil && in.Title == nil
}

type UserService struct {
	store storage.Storage
	cache WorkerCache
}

func NewUserService(store storage.Storage, cache WorkerCache) *UserService {
	return &UserService{store: store, cache: cache}
}

func (s *UserService) Get(ctx context.Context, id int64) (user.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

// UpdateProfile lets a user edit their own record. Credentials, role and the
// derived rating fields are not reachable through this path by construction.
func (s *UserService) UpdateProfile(ctx context.Context, actor Actor, id int64, in UpdateProfileInput) (user.User, error) {
	if !actor.Authenticated() {
		return user.User{}, ErrNotAuthenticated
	}
	if actor.UserID != id {
		return user.User{}, ErrNotAuthorized
	}
	if in.empty() {
		return user.User{}, ErrValidation
	}
	if in.Email != nil && *in.Email == "" {
		return user.User{}, ErrValidation
	}
	if in.FullName != nil && *in.FullName == "" {
		return user.User{}, ErrValidation
	}

	u, err := s.store.UpdateUser(ctx, id, user.Update{
		Email:    in.Email,
		FullName: in.FullName,
		Location: in.Location,
		Bio:      in.Bio,
		Phone:    in.Phone,
		Skills:   in.Skills,
		Avatar:   in.Avatar,
		Title:    in.Title,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.DeleteByPattern(ctx, topRatedKeyPattern)
	}
	return sanitizeUser(u), nil
}

func (s *UserService) ListWorkers(ctx context.Context) ([]user.User, error) {
	workers, err := s.store.ListWorkers(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return sanitizeUsers(workers), nil
}

// TopRatedWorkers serves from the cache when possible; a cold or down cache
// falls through to the store.
func (s *UserService) TopRatedWorkers(ctx context.Context, limit int) ([]user.User, error) {
	if limit <= 0 {
		return nil, ErrValidation
	}

	key := fmt.Sprintf("workers:top:%d", limit)
	if s.cache != nil {
		var cached []user.User
		if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	workers, err := s.store.TopRatedWorkers(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}
	out := sanitizeUsers(workers)

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, topRatedTTL)
	}
	return out, nil
}

func sanitizeUsers(users []user.User) []user.User {
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		out = append(out, sanitizeUser(u))
	}
	return out
}
