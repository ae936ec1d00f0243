// Package seed loads a small demo data set through the storage contract, so
// it works identically against the memory and Postgres drivers.
package seed

import (
	"context"
	"errors"
	"fmt"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/message"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// demoPassword is shared by every seeded account.
const demoPassword = "password123"

// Apply inserts the demo users, jobs, an application and a conversation.
// It is idempotent: a second run against the same store is a no-op.
func Apply(ctx context.Context, st storage.Storage) error {
	if _, err := st.GetUserByUsername(ctx, "maria.santos"); err == nil {
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []user.Insert{
		{
			Username:     "maria.santos",
			PasswordHash: string(hash),
			Email:        "maria.santos@example.com",
			FullName:     "Maria Santos",
			Type:         user.TypeWorker,
			Location:     "Quezon City",
			Bio:          "House cleaning and laundry with 6 years of experience.",
			Phone:        "+63 917 555 0101",
			Skills:       []string{"cleaning", "laundry", "cooking"},
			Title:        "Household Helper",
		},
		{
			Username:     "ben.reyes",
			PasswordHash: string(hash),
			Email:        "ben.reyes@example.com",
			FullName:     "Ben Reyes",
			Type:         user.TypeWorker,
			Location:     "Makati",
			Bio:          "Licensed electrician, available for repairs and installs.",
			Phone:        "+63 917 555 0102",
			Skills:       []string{"electrical", "repairs", "installation"},
			Title:        "Electrician",
		},
		{
			Username:     "acme.homes",
			PasswordHash: string(hash),
			Email:        "hr@acmehomes.example.com",
			FullName:     "Acme Homes",
			Type:         user.TypeEmployer,
			Location:     "Taguig",
			Bio:          "Property management company hiring household staff.",
			Phone:        "+63 2 8555 0100",
		},
	}

	ids := make([]int64, 0, len(users))
	for _, in := range users {
		u, err := st.CreateUser(ctx, in)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", in.Username, err)
		}
		ids = append(ids, u.ID)
	}
	workerID, employerID := ids[0], ids[2]

	j, err := st.CreateJob(ctx, job.Insert{
		EmployerID:  employerID,
		Title:       "Weekly house cleaning",
		Description: "Three-bedroom unit in BGC, cleaning every Saturday morning.",
		Location:    "Taguig",
		JobType:     "part_time",
		ServiceType: "cleaning",
		Rate:        "PHP 600/visit",
		Skills:      []string{"cleaning", "laundry"},
	})
	if err != nil {
		return fmt.Errorf("seed job: %w", err)
	}

	if _, err := st.CreateJob(ctx, job.Insert{
		EmployerID:  employerID,
		Title:       "Rewire kitchen outlets",
		Description: "Replace old wiring and add two grounded outlets.",
		Location:    "Taguig",
		JobType:     "one_time",
		ServiceType: "electrical",
		Rate:        "PHP 3500",
		Skills:      []string{"electrical"},
	}); err != nil {
		return fmt.Errorf("seed job: %w", err)
	}

	if _, err := st.CreateApplication(ctx, application.Insert{
		JobID:       j.ID,
		WorkerID:    workerID,
		CoverLetter: "I live nearby and have cleaned similar units for years.",
	}); err != nil {
		return fmt.Errorf("seed application: %w", err)
	}

	if _, err := st.CreateMessage(ctx, message.Insert{
		FromUserID: employerID,
		ToUserID:   workerID,
		Content:    "Hi Maria, are you available this Saturday?",
	}); err != nil {
		return fmt.Errorf("seed message: %w", err)
	}
	if _, err := st.CreateMessage(ctx, message.Insert{
		FromUserID: workerID,
		ToUserID:   employerID,
		Content:    "Yes, I can start at 8am.",
	}); err != nil {
		return fmt.Errorf("seed message: %w", err)
	}

	return nil
}
