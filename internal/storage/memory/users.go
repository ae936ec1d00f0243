package memory

import (
	"context"
	"sort"

	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

func (s *Store) CreateUser(_ context.Context, in user.Insert) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return user.User{}, storage.ErrDuplicate
		}
	}

	s.userID++
	u := user.User{
		ID:           s.userID,
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		Email:        in.Email,
		FullName:     in.FullName,
		Type:         in.Type,
		Location:     in.Location,
		Bio:          in.Bio,
		Phone:        in.Phone,
		Skills:       copyStrings(in.Skills),
		Avatar:       in.Avatar,
		Title:        in.Title,
	}
	s.users[u.ID] = u
	return cloneUser(u), nil
}

func (s *Store) GetUser(_ context.Context, id int64) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, storage.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return user.User{}, storage.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, id int64, upd user.Update) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, storage.ErrNotFound
	}

	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Skills != nil {
		u.Skills = copyStrings(upd.Skills)
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Title != nil {
		u.Title = *upd.Title
	}

	s.users[id] = u
	return cloneUser(u), nil
}

func (s *Store) ListWorkers(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.workersLocked(), nil
}

func (s *Store) TopRatedWorkers(_ context.Context, limit int) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workers := s.workersLocked()
	sort.SliceStable(workers, func(i, j int) bool {
		return ratingOrZero(workers[i]) > ratingOrZero(workers[j])
	})
	if limit >= 0 && limit < len(workers) {
		workers = workers[:limit]
	}
	return workers, nil
}

// workersLocked returns worker snapshots in insertion order so that the
// top-rated sort stays stable across equal ratings.
func (s *Store) workersLocked() []user.User {
	out := make([]user.User, 0)
	for _, u := range s.users {
		if u.Type == user.TypeWorker {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func ratingOrZero(u user.User) int {
	if u.Rating == nil {
		return 0
	}
	return *u.Rating
}
