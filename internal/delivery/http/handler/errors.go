package handler

import (
	"errors"

	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// statusForTaxonomy maps each domain error kind to its own status code so
// clients can branch on the outcome.
func statusForTaxonomy(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, usecase.ErrInvalidState):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// mapUsecaseError wraps a domain error for the error middleware, using the
// endpoint's own wording where one is given for that status.
func mapUsecaseError(err error, messages map[int]string) error {
	status := statusForTaxonomy(err)
	msg := messages[status]
	if msg == "" {
		msg = response.DefaultMessageForStatus(status)
	}
	return middleware.NewAppError(status, msg, nil, err)
}
