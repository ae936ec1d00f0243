package usecase

import (
	"context"
	"errors"
	"strings"

	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

type CreateJobInput struct {
	Title       string
	Description string
	Location    string
	JobType     string
	ServiceType string
	Rate        string
	Skills      []string
}

type UpdateJobInput struct {
	Title       *string
	Description *string
	Location    *string
	JobType     *string
	ServiceType *string
	Rate        *string
	Skills      []string
	Status      *string
}

type JobService struct {
	store storage.Storage
}

func NewJobService(store storage.Storage) *JobService {
	return &JobService{store: store}
}

// Create posts a job on behalf of the acting employer. The employer id is
// always the caller's, never taken from the payload, and the job starts
// open no matter what the client sent.
func (s *JobService) Create(ctx context.Context, actor Actor, in CreateJobInput) (job.Job, error) {
	if !actor.Authenticated() {
		return job.Job{}, ErrNotAuthenticated
	}
	if actor.Type != user.TypeEmployer {
		return job.Job{}, ErrNotAuthorized
	}

	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.JobType) == "" ||
		strings.TrimSpace(in.ServiceType) == "" ||
		strings.TrimSpace(in.Rate) == "" {
		return job.Job{}, ErrValidation
	}

	j, err := s.store.CreateJob(ctx, job.Insert{
		EmployerID:  actor.UserID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		JobType:     strings.TrimSpace(in.JobType),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Rate:        strings.TrimSpace(in.Rate),
		Skills:      in.Skills,
	})
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (s *JobService) Get(ctx context.Context, id int64) (job.Job, error) {
	j, err := s.store.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// Update edits a job the actor owns. Status may only move forward through
// recognized values; id, employer and creation time are immutable by
// construction of the update type.
func (s *JobService) Update(ctx context.Context, actor Actor, id int64, in UpdateJobInput) (job.Job, error) {
	if !actor.Authenticated() {
		return job.Job{}, ErrNotAuthenticated
	}

	current, err := s.store.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if current.EmployerID != actor.UserID {
		return job.Job{}, ErrNotAuthorized
	}

	upd := job.Update{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		JobType:     in.JobType,
		ServiceType: in.ServiceType,
		Rate:        in.Rate,
		Skills:      in.Skills,
	}

	if in.Status != nil {
		next := job.Status(*in.Status)
		if !next.Valid() {
			return job.Job{}, ErrValidation
		}
		if !job.CanTransition(current.Status, next) {
			return job.Job{}, ErrInvalidState
		}
		upd.Status = &next
	}

	updated, err := s.store.UpdateJob(ctx, id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return updated, nil
}

func (s *JobService) List(ctx context.Context, q job.Query) ([]job.Job, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, ErrValidation
	}
	jobs, err := s.store.ListJobs(ctx, q)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

// EmployerJobs lists the acting employer's own postings.
func (s *JobService) EmployerJobs(ctx context.Context, actor Actor) ([]job.Job, error) {
	if !actor.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if actor.Type != user.TypeEmployer {
		return nil, ErrNotAuthorized
	}

	jobs, err := s.store.ListJobs(ctx, job.Query{EmployerID: actor.UserID})
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}
