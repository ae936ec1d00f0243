package application

import "time"

// Status is the application lifecycle state. Applications start pending and
// end accepted or rejected; both outcomes are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether the application has reached a terminal state.
func (s Status) Decided() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Application struct {
	ID          int64
	JobID       int64
	WorkerID    int64
	CoverLetter string
	Status      Status
	CreatedAt   time.Time
}

// Insert carries the caller-settable fields. Status and CreatedAt are
// store-owned; a new application always starts pending.
type Insert struct {
	JobID       int64
	WorkerID    int64
	CoverLetter string
}

type Update struct {
	Status *Status
}

// Query filters the application listing. Zero values mean "any".
type Query struct {
	JobID    int64
	WorkerID int64
	Status   Status
}
