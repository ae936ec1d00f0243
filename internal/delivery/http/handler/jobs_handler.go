package handler

import (
	"strings"

	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/job"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	jobs *usecase.JobService
	apps *usecase.ApplicationService
}

type createJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	JobType     string   `json:"job_type"`
	ServiceType string   `json:"service_type"`
	Rate        string   `json:"rate"`
	Skills      []string `json:"skills"`
}

type updateJobRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	JobType     *string  `json:"job_type"`
	ServiceType *string  `json:"service_type"`
	Rate        *string  `json:"rate"`
	Skills      []string `json:"skills"`
	Status      *string  `json:"status"`
}

func NewJobsHandler(jobs *usecase.JobService, apps *usecase.ApplicationService) *JobsHandler {
	return &JobsHandler{jobs: jobs, apps: apps}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.ListJobs)
	r.Get("/jobs/:id", h.GetJob)
	r.Post("/jobs", authMw, h.CreateJob)
	r.Patch("/jobs/:id", authMw, h.UpdateJob)
	r.Get("/jobs/:id/applications", authMw, h.JobApplications)
	r.Get("/employer/jobs", authMw, h.EmployerJobs)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	q := job.Query{
		JobType:  c.Query("job_type"),
		Location: c.Query("location"),
		Status:   job.Status(c.Query("status")),
		Skills:   parseSkillsQuery(c.Query("skills")),
	}

	jobs, err := h.jobs.List(c.Context(), q)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusBadRequest: "Unrecognized status filter",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

func (h *JobsHandler) GetJob(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusNotFound: "Job not found",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) CreateJob(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	j, err := h.jobs.Create(c.Context(), middleware.ActorFromCtx(c), usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		ServiceType: req.ServiceType,
		Rate:        req.Rate,
		Skills:      req.Skills,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden:  "Only employers can post jobs",
			fiber.StatusBadRequest: "Invalid job payload",
		})
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromJob(j))
}

func (h *JobsHandler) UpdateJob(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	j, err := h.jobs.Update(c.Context(), middleware.ActorFromCtx(c), id, usecase.UpdateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		ServiceType: req.ServiceType,
		Rate:        req.Rate,
		Skills:      req.Skills,
		Status:      req.Status,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden:           "Only the posting employer can update this job",
			fiber.StatusNotFound:            "Job not found",
			fiber.StatusBadRequest:          "Unrecognized job status",
			fiber.StatusUnprocessableEntity: "Job status can only move forward",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) EmployerJobs(c fiber.Ctx) error {
	jobs, err := h.jobs.EmployerJobs(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden: "Only employers have job postings",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

func (h *JobsHandler) JobApplications(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	items, err := h.apps.JobApplications(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden: "Only the posting employer can view applications",
			fiber.StatusNotFound:  "Job not found",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicationsWithWorker(items))
}

func parseSkillsQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
