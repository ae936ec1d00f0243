package usecase

import (
	"context"
	"errors"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

type ApplyInput struct {
	JobID       int64
	CoverLetter string
}

// ApplicationWithJob is a worker's application joined with its job.
type ApplicationWithJob struct {
	Application application.Application
	Job         job.Job
}

// ApplicationWithWorker is a job's application joined with the applicant.
type ApplicationWithWorker struct {
	Application application.Application
	Worker      user.User
}

type ApplicationService struct {
	store storage.Storage
}

func NewApplicationService(store storage.Storage) *ApplicationService {
	return &ApplicationService{store: store}
}

// Apply submits the acting worker's application. The job must still be open
// and the worker must not have applied before, whatever came of that earlier
// application.
func (s *ApplicationService) Apply(ctx context.Context, actor Actor, in ApplyInput) (application.Application, error) {
	if !actor.Authenticated() {
		return application.Application{}, ErrNotAuthenticated
	}
	if actor.Type != user.TypeWorker {
		return application.Application{}, ErrNotAuthorized
	}
	if in.JobID <= 0 {
		return application.Application{}, ErrValidation
	}

	j, err := s.store.GetJob(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	if j.Status != job.StatusOpen {
		return application.Application{}, ErrInvalidState
	}

	// The store rejects a repeat (job, worker) pair itself, so two racing
	// submissions cannot both land.
	a, err := s.store.CreateApplication(ctx, application.Insert{
		JobID:       in.JobID,
		WorkerID:    actor.UserID,
		CoverLetter: in.CoverLetter,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return application.Application{}, ErrDuplicate
		}
		return application.Application{}, ErrInternal
	}
	return a, nil
}

// Decide accepts or rejects a pending application. Only the owning job's
// employer may decide, and a decided application is final. The first
// acceptance advances an open job to in_progress.
func (s *ApplicationService) Decide(ctx context.Context, actor Actor, id int64, status application.Status) (application.Application, error) {
	if !actor.Authenticated() {
		return application.Application{}, ErrNotAuthenticated
	}
	if !status.Valid() || !status.Decided() {
		return application.Application{}, ErrValidation
	}

	a, err := s.store.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := s.store.GetJob(ctx, a.JobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if j.EmployerID != actor.UserID {
		return application.Application{}, ErrNotAuthorized
	}
	if a.Status != application.StatusPending {
		return application.Application{}, ErrInvalidState
	}

	updated, err := s.store.UpdateApplication(ctx, id, application.Update{Status: &status})
	if err != nil {
		return application.Application{}, ErrInternal
	}

	if status == application.StatusAccepted {
		if err := s.tryAdvanceJob(ctx, j); err != nil {
			return application.Application{}, ErrInternal
		}
	}
	return updated, nil
}

// tryAdvanceJob fires the open -> in_progress transition at most once. It is
// idempotent: a job already past open is left alone, so later acceptances
// for the same job never re-trigger it.
func (s *ApplicationService) tryAdvanceJob(ctx context.Context, j job.Job) error {
	if j.Status != job.StatusOpen {
		return nil
	}
	next := job.StatusInProgress
	_, err := s.store.UpdateJob(ctx, j.ID, job.Update{Status: &next})
	return err
}

// WorkerApplications lists the acting worker's applications with their jobs.
func (s *ApplicationService) WorkerApplications(ctx context.Context, actor Actor) ([]ApplicationWithJob, error) {
	if !actor.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if actor.Type != user.TypeWorker {
		return nil, ErrNotAuthorized
	}

	apps, err := s.store.ListApplications(ctx, application.Query{WorkerID: actor.UserID})
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationWithJob, 0, len(apps))
	for _, a := range apps {
		j, err := s.store.GetJob(ctx, a.JobID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInternal
		}
		out = append(out, ApplicationWithJob{Application: a, Job: j})
	}
	return out, nil
}

// JobApplications lists a job's applications with their applicants; only the
// job's employer may see them.
func (s *ApplicationService) JobApplications(ctx context.Context, actor Actor, jobID int64) ([]ApplicationWithWorker, error) {
	if !actor.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	j, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}
	if j.EmployerID != actor.UserID {
		return nil, ErrNotAuthorized
	}

	apps, err := s.store.ListApplications(ctx, application.Query{JobID: jobID})
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationWithWorker, 0, len(apps))
	for _, a := range apps {
		w, err := s.store.GetUser(ctx, a.WorkerID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInternal
		}
		out = append(out, ApplicationWithWorker{Application: a, Worker: sanitizeUser(w)})
	}
	return out, nil
}
