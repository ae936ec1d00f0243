package memory

import (
	"context"
	"sort"

	"laborlink/internal/domain/application"
	"laborlink/internal/storage"
)

func (s *Store) CreateApplication(_ context.Context, in application.Insert) (application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.applications {
		if a.JobID == in.JobID && a.WorkerID == in.WorkerID {
			return application.Application{}, storage.ErrDuplicate
		}
	}

	s.applicationID++
	a := application.Application{
		ID:          s.applicationID,
		JobID:       in.JobID,
		WorkerID:    in.WorkerID,
		CoverLetter: in.CoverLetter,
		Status:      application.StatusPending,
		CreatedAt:   s.now(),
	}
	s.applications[a.ID] = a
	return a, nil
}

func (s *Store) GetApplication(_ context.Context, id int64) (application.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return application.Application{}, storage.ErrNotFound
	}
	return a, nil
}

func (s *Store) UpdateApplication(_ context.Context, id int64, upd application.Update) (application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return application.Application{}, storage.ErrNotFound
	}

	if upd.Status != nil {
		a.Status = *upd.Status
	}

	s.applications[id] = a
	return a, nil
}

func (s *Store) ListApplications(_ context.Context, q application.Query) ([]application.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]application.Application, 0)
	for _, a := range s.applications {
		if q.JobID != 0 && a.JobID != q.JobID {
			continue
		}
		if q.WorkerID != 0 && a.WorkerID != q.WorkerID {
			continue
		}
		if q.Status != "" && a.Status != q.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, k int) bool {
		return newestFirst(out[i].CreatedAt, out[k].CreatedAt, out[i].ID, out[k].ID)
	})
	return out, nil
}
