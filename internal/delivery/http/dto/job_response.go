package dto

import (
	"time"

	"laborlink/internal/domain/job"
)

type JobResponse struct {
	ID          int64     `json:"id"`
	EmployerID  int64     `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	ServiceType string    `json:"service_type"`
	Rate        string    `json:"rate"`
	Skills      []string  `json:"skills"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromJob(j job.Job) JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:          j.ID,
		EmployerID:  j.EmployerID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		JobType:     j.JobType,
		ServiceType: j.ServiceType,
		Rate:        j.Rate,
		Skills:      skills,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt.UTC(),
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
