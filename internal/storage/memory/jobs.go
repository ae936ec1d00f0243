package memory

import (
	"context"
	"sort"

	"laborlink/internal/domain/job"
	"laborlink/internal/storage"
)

func (s *Store) CreateJob(_ context.Context, in job.Insert) (job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobID++
	j := job.Job{
		ID:          s.jobID,
		EmployerID:  in.EmployerID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		JobType:     in.JobType,
		ServiceType: in.ServiceType,
		Rate:        in.Rate,
		Skills:      copyStrings(in.Skills),
		Status:      job.StatusOpen,
		CreatedAt:   s.now(),
	}
	s.jobs[j.ID] = j
	return cloneJob(j), nil
}

func (s *Store) GetJob(_ context.Context, id int64) (job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return job.Job{}, storage.ErrNotFound
	}
	return cloneJob(j), nil
}

func (s *Store) UpdateJob(_ context.Context, id int64, upd job.Update) (job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return job.Job{}, storage.ErrNotFound
	}

	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.Location != nil {
		j.Location = *upd.Location
	}
	if upd.JobType != nil {
		j.JobType = *upd.JobType
	}
	if upd.ServiceType != nil {
		j.ServiceType = *upd.ServiceType
	}
	if upd.Rate != nil {
		j.Rate = *upd.Rate
	}
	if upd.Skills != nil {
		j.Skills = copyStrings(upd.Skills)
	}
	if upd.Status != nil {
		j.Status = *upd.Status
	}

	s.jobs[id] = j
	return cloneJob(j), nil
}

func (s *Store) ListJobs(_ context.Context, q job.Query) ([]job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]job.Job, 0)
	for _, j := range s.jobs {
		if !matchJob(j, q) {
			continue
		}
		out = append(out, cloneJob(j))
	}
	sort.Slice(out, func(i, k int) bool {
		return newestFirst(out[i].CreatedAt, out[k].CreatedAt, out[i].ID, out[k].ID)
	})
	return out, nil
}

func matchJob(j job.Job, q job.Query) bool {
	if q.EmployerID != 0 && j.EmployerID != q.EmployerID {
		return false
	}
	if q.JobType != "" && j.JobType != q.JobType {
		return false
	}
	if q.Location != "" && j.Location != q.Location {
		return false
	}
	if q.Status != "" && j.Status != q.Status {
		return false
	}
	if len(q.Skills) > 0 && !skillsOverlap(j.Skills, q.Skills) {
		return false
	}
	return true
}
