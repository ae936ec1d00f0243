package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReviewHandler struct {
	reviews *usecase.ReviewService
}

type createReviewRequest struct {
	JobID    int64  `json:"job_id"`
	ToUserID int64  `json:"to_user_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func NewReviewHandler(reviews *usecase.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/reviews", authMw, h.Create)
}

func (h *ReviewHandler) Create(c fiber.Ctx) error {
	var req createReviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	r, err := h.reviews.Create(c.Context(), middleware.ActorFromCtx(c), usecase.CreateReviewInput{
		JobID:    req.JobID,
		ToUserID: req.ToUserID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden:           "Only the job's parties can review each other",
			fiber.StatusNotFound:            "Job not found",
			fiber.StatusUnprocessableEntity: "Can only review completed jobs",
			fiber.StatusConflict:            "You have already reviewed this user for this job",
			fiber.StatusBadRequest:          "Invalid review payload",
		})
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromReview(r))
}
