package job

import "time"

// Status is the job lifecycle state. Transitions only move forward:
// open -> in_progress -> completed.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func rank(s Status) int {
	switch s {
	case StatusOpen:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

// CanTransition reports whether a job may move from one status to another.
// Only strictly forward moves between recognized statuses are allowed.
func CanTransition(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return rank(to) > rank(from)
}

type Job struct {
	ID          int64
	EmployerID  int64
	Title       string
	Description string
	Location    string
	JobType     string
	ServiceType string
	Rate        string
	Skills      []string
	Status      Status
	CreatedAt   time.Time
}

// Insert carries the caller-settable fields for job creation. Status and
// CreatedAt are store-owned; a new job always starts open.
type Insert struct {
	EmployerID  int64
	Title       string
	Description string
	Location    string
	JobType     string
	ServiceType string
	Rate        string
	Skills      []string
}

// Update is a partial job update. The store merges it blindly; transition
// legality is the rule layer's job.
type Update struct {
	Title       *string
	Description *string
	Location    *string
	JobType     *string
	ServiceType *string
	Rate        *string
	Skills      []string
	Status      *Status
}

// Query filters the job listing. Zero values mean "any". Skills matches
// jobs sharing at least one skill with the list; everything else is exact.
type Query struct {
	EmployerID int64
	JobType    string
	Location   string
	Status     Status
	Skills     []string
}
