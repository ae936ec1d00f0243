package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/application"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	apps *usecase.ApplicationService
}

type applyRequest struct {
	JobID       int64  `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}

type decideApplicationRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(apps *usecase.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/applications", authMw, h.Apply)
	r.Patch("/applications/:id", authMw, h.Decide)
	r.Get("/worker/applications", authMw, h.WorkerApplications)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	a, err := h.apps.Apply(c.Context(), middleware.ActorFromCtx(c), usecase.ApplyInput{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden:           "Only workers can submit applications",
			fiber.StatusNotFound:            "Job not found",
			fiber.StatusUnprocessableEntity: "This job is not accepting applications",
			fiber.StatusConflict:            "You have already applied for this job",
		})
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromApplication(a))
}

func (h *ApplicationHandler) Decide(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req decideApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	a, err := h.apps.Decide(c.Context(), middleware.ActorFromCtx(c), id, application.Status(req.Status))
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden:           "Only the posting employer can decide applications",
			fiber.StatusNotFound:            "Application not found",
			fiber.StatusBadRequest:          "Unrecognized application status",
			fiber.StatusUnprocessableEntity: "Application has already been decided",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(a))
}

func (h *ApplicationHandler) WorkerApplications(c fiber.Ctx) error {
	items, err := h.apps.WorkerApplications(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden: "Only workers have applications",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicationsWithJob(items))
}
