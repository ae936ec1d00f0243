package dto

import (
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/usecase"
)

type ApplicationResponse struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	WorkerID    int64     `json:"worker_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicationWithJobResponse is the worker's view: their application plus
// the job it targets.
type ApplicationWithJobResponse struct {
	ApplicationResponse
	Job JobResponse `json:"job"`
}

// ApplicationWithWorkerResponse is the employer's view: an application plus
// the applicant (sans credentials, like every nested user).
type ApplicationWithWorkerResponse struct {
	ApplicationResponse
	Worker UserResponse `json:"worker"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		WorkerID:    a.WorkerID,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.UTC(),
	}
}

func FromApplicationsWithJob(items []usecase.ApplicationWithJob) []ApplicationWithJobResponse {
	out := make([]ApplicationWithJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ApplicationWithJobResponse{
			ApplicationResponse: FromApplication(it.Application),
			Job:                 FromJob(it.Job),
		})
	}
	return out
}

func FromApplicationsWithWorker(items []usecase.ApplicationWithWorker) []ApplicationWithWorkerResponse {
	out := make([]ApplicationWithWorkerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ApplicationWithWorkerResponse{
			ApplicationResponse: FromApplication(it.Application),
			Worker:              FromUser(it.Worker),
		})
	}
	return out
}
