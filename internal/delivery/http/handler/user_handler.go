package handler

import (
	"strconv"

	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// UserHandler serves profiles, the worker directory and per-user reviews.
type UserHandler struct {
	users   *usecase.UserService
	reviews *usecase.ReviewService
}

type updateProfileRequest struct {
	Email    *string  `json:"email"`
	FullName *string  `json:"full_name"`
	Location *string  `json:"location"`
	Bio      *string  `json:"bio"`
	Phone    *string  `json:"phone"`
	Skills   []string `json:"skills"`
	Avatar   *string  `json:"avatar"`
	Title    *string  `json:"title"`
}

func NewUserHandler(users *usecase.UserService, reviews *usecase.ReviewService) *UserHandler {
	return &UserHandler{users: users, reviews: reviews}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/workers", h.ListWorkers)
	r.Get("/workers/top-rated", h.TopRatedWorkers)
	r.Get("/users/:id", h.GetUser)
	r.Get("/users/:id/reviews", h.GetUserReviews)
	r.Patch("/users/:id", authMw, h.UpdateUser)
}

func (h *UserHandler) ListWorkers(c fiber.Ctx) error {
	workers, err := h.users.ListWorkers(c.Context())
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(workers))
}

func (h *UserHandler) TopRatedWorkers(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 4)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	workers, err := h.users.TopRatedWorkers(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusBadRequest: "Invalid limit",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(workers))
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	u, err := h.users.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusNotFound: "User not found",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(u))
}

func (h *UserHandler) GetUserReviews(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	items, err := h.reviews.UserReviews(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusNotFound: "User not found",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromReviewsWithReviewer(items))
}

func (h *UserHandler) UpdateUser(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	u, err := h.users.UpdateProfile(c.Context(), middleware.ActorFromCtx(c), id, usecase.UpdateProfileInput{
		Email:    req.Email,
		FullName: req.FullName,
		Location: req.Location,
		Bio:      req.Bio,
		Phone:    req.Phone,
		Skills:   req.Skills,
		Avatar:   req.Avatar,
		Title:    req.Title,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusForbidden:  "You can only update your own profile",
			fiber.StatusNotFound:   "User not found",
			fiber.StatusBadRequest: "Invalid request payload",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(u))
}

func parseIDParam(c fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
