package usecase

import (
	"context"
	"testing"
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
	"laborlink/internal/storage/memory"
)

func newTestStorage(t *testing.T) storage.Storage {
	t.Helper()
	return memory.NewStore()
}

func seedUser(t *testing.T, st storage.Storage, username string, typ user.Type) user.User {
	t.Helper()
	u, err := st.CreateUser(context.Background(), user.Insert{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		FullName:     username,
		Type:         typ,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func seedJob(t *testing.T, st storage.Storage, employerID int64) job.Job {
	t.Helper()
	j, err := st.CreateJob(context.Background(), job.Insert{
		EmployerID:  employerID,
		Title:       "Deep clean",
		Description: "Two-bedroom apartment",
		Location:    "Makati",
		JobType:     "one_time",
		ServiceType: "cleaning",
		Rate:        "PHP 1500",
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}

func setJobStatus(t *testing.T, st storage.Storage, jobID int64, status job.Status) {
	t.Helper()
	if _, err := st.UpdateJob(context.Background(), jobID, job.Update{Status: &status}); err != nil {
		t.Fatalf("set job status: %v", err)
	}
}

func seedApplication(t *testing.T, st storage.Storage, jobID, workerID int64) application.Application {
	t.Helper()
	a, err := st.CreateApplication(context.Background(), application.Insert{
		JobID:    jobID,
		WorkerID: workerID,
	})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}

func actorFor(u user.User) Actor {
	return Actor{UserID: u.ID, Type: u.Type}
}

// recordingCache is a WorkerCache that remembers what was asked of it.
type recordingCache struct {
	sets     []string
	gets     []string
	deletes  []string
	getHits  map[string]any
	disabled bool
}

func newRecordingCache() *recordingCache {
	return &recordingCache{getHits: map[string]any{}}
}

func (c *recordingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets = append(c.gets, key)
	if c.disabled {
		return false, nil
	}
	v, ok := c.getHits[key]
	if !ok {
		return false, nil
	}
	if users, ok := v.([]user.User); ok {
		if dst, ok := out.(*[]user.User); ok {
			*dst = users
			return true, nil
		}
	}
	return false, nil
}

func (c *recordingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets = append(c.sets, key)
	if users, ok := value.([]user.User); ok {
		c.getHits[key] = users
	}
	return nil
}

func (c *recordingCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	c.getHits = map[string]any{}
	return nil
}
