// Package usecase is the domain rule layer: it enforces authorization and
// the job/application state machines on top of the dumb storage layer, and
// translates store results into the error taxonomy below.
package usecase

import (
	"errors"

	"laborlink/internal/domain/user"
)

// The error taxonomy. Every rule violation maps to exactly one of these so
// delivery can give each kind a distinguishable outcome.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrDuplicate        = errors.New("duplicate conflict")
	ErrValidation       = errors.New("validation failed")
	ErrInternal         = errors.New("internal error")
)

// Actor is the authenticated caller as established by the session layer.
// The zero Actor is unauthenticated.
type Actor struct {
	UserID int64
	Type   user.Type
}

func (a Actor) Authenticated() bool {
	return a.UserID != 0
}
