package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"laborlink/internal/domain/application"
	"laborlink/internal/domain/job"
	"laborlink/internal/domain/message"
	"laborlink/internal/domain/review"
	"laborlink/internal/domain/user"
	"laborlink/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func mustCreateUser(t *testing.T, s *Store, username string, typ user.Type) user.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), user.Insert{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		FullName:     username,
		Type:         typ,
	})
	if err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return u
}

func TestStore_IDsMonotonicPerType(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u1 := mustCreateUser(t, s, "a", user.TypeEmployer)
	u2 := mustCreateUser(t, s, "b", user.TypeWorker)
	if u1.ID != 1 || u2.ID != 2 {
		t.Fatalf("user ids = %d, %d; want 1, 2", u1.ID, u2.ID)
	}

	j, err := s.CreateJob(ctx, job.Insert{EmployerID: u1.ID, Title: "t"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if j.ID != 1 {
		t.Fatalf("job id = %d; want counters independent per type", j.ID)
	}
	if j.Status != job.StatusOpen {
		t.Fatalf("new job status = %q; want open", j.Status)
	}
	if j.CreatedAt.IsZero() {
		t.Fatalf("job createdAt not stamped")
	}
}

func TestStore_GetUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetUser(context.Background(), 42); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_UpdateUser_MergesPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "w", user.TypeWorker)

	bio := "experienced plumber"
	got, err := s.UpdateUser(ctx, u.ID, user.Update{Bio: &bio, Skills: []string{"plumbing"}})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got.Bio != bio || len(got.Skills) != 1 {
		t.Fatalf("update not merged: %+v", got)
	}
	if got.Username != "w" || got.Email != "w@example.com" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "w", user.TypeWorker)

	got, err := s.UpdateUser(ctx, u.ID, user.Update{Skills: []string{"tiling"}})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	got.Skills[0] = "mutated"

	again, err := s.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if again.Skills[0] != "tiling" {
		t.Fatalf("stored entity aliased a returned snapshot: %+v", again.Skills)
	}
}

func TestStore_ListJobs_FilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	e := mustCreateUser(t, s, "emp", user.TypeEmployer)

	j1, _ := s.CreateJob(ctx, job.Insert{EmployerID: e.ID, Title: "first", Location: "Lagos", JobType: "full_time", Skills: []string{"wiring"}})
	j2, _ := s.CreateJob(ctx, job.Insert{EmployerID: e.ID, Title: "second", Location: "Abuja", JobType: "contract", Skills: []string{"plumbing", "wiring"}})
	j3, _ := s.CreateJob(ctx, job.Insert{EmployerID: e.ID, Title: "third", Location: "Lagos", JobType: "contract", Skills: []string{"painting"}})

	all, err := s.ListJobs(ctx, job.Query{})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(all) != 3 || all[0].ID != j3.ID || all[1].ID != j2.ID || all[2].ID != j1.ID {
		t.Fatalf("expected newest-first ordering, got %+v", ids(all))
	}

	lagos, _ := s.ListJobs(ctx, job.Query{Location: "Lagos"})
	if len(lagos) != 2 {
		t.Fatalf("location filter: got %d jobs", len(lagos))
	}

	wired, _ := s.ListJobs(ctx, job.Query{Skills: []string{"wiring", "welding"}})
	if len(wired) != 2 || wired[0].ID != j2.ID || wired[1].ID != j1.ID {
		t.Fatalf("skills overlap filter: got %+v", ids(wired))
	}

	both, _ := s.ListJobs(ctx, job.Query{Location: "Lagos", JobType: "contract"})
	if len(both) != 1 || both[0].ID != j3.ID {
		t.Fatalf("combined filter: got %+v", ids(both))
	}
}

func TestStore_ListJobs_TimestampTieBrokenByID(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, _ := s.CreateJob(ctx, job.Insert{EmployerID: 1, Title: "a"})
	b, _ := s.CreateJob(ctx, job.Insert{EmployerID: 1, Title: "b"})

	got, _ := s.ListJobs(ctx, job.Query{})
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("equal timestamps must order by id ascending, got %+v", ids(got))
	}
}

func TestStore_TopRatedWorkers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Ratings 5, 3, none, 4: top two must be the 5 and the 4, in that order.
	w5 := mustCreateUser(t, s, "w5", user.TypeWorker)
	w3 := mustCreateUser(t, s, "w3", user.TypeWorker)
	mustCreateUser(t, s, "unrated", user.TypeWorker)
	w4 := mustCreateUser(t, s, "w4", user.TypeWorker)
	mustCreateUser(t, s, "emp", user.TypeEmployer)

	rate := func(target int64, rating int) {
		if _, err := s.CreateReview(ctx, review.Insert{JobID: 1, FromUserID: 99, ToUserID: target, Rating: rating}); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}
	rate(w5.ID, 5)
	rate(w3.ID, 3)
	rate(w4.ID, 4)

	top, err := s.TopRatedWorkers(ctx, 2)
	if err != nil {
		t.Fatalf("TopRatedWorkers: %v", err)
	}
	if len(top) != 2 || top[0].ID != w5.ID || top[1].ID != w4.ID {
		t.Fatalf("top-rated: got %+v", userIDs(top))
	}

	all, _ := s.TopRatedWorkers(ctx, 10)
	if len(all) != 4 {
		t.Fatalf("limit above population: got %d workers", len(all))
	}
	if all[3].Rating != nil {
		t.Fatalf("unrated worker should sort last with nil rating")
	}
}

func TestStore_CreateReview_RecomputesRating(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	w := mustCreateUser(t, s, "w", user.TypeWorker)

	if w.Rating != nil || w.ReviewCount != 0 {
		t.Fatalf("fresh user should have no derived rating: %+v", w)
	}

	if _, err := s.CreateReview(ctx, review.Insert{JobID: 1, FromUserID: 2, ToUserID: w.ID, Rating: 5}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	got, _ := s.GetUser(ctx, w.ID)
	if got.Rating == nil || *got.Rating != 5 || got.ReviewCount != 1 {
		t.Fatalf("after one 5-star review: %+v", got)
	}

	if _, err := s.CreateReview(ctx, review.Insert{JobID: 2, FromUserID: 3, ToUserID: w.ID, Rating: 3}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	got, _ = s.GetUser(ctx, w.ID)
	if got.Rating == nil || *got.Rating != 4 || got.ReviewCount != 2 {
		t.Fatalf("round(mean(5,3)) should be 4 with count 2, got %+v", got)
	}
}

func TestStore_ListApplications_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a1, _ := s.CreateApplication(ctx, application.Insert{JobID: 1, WorkerID: 10})
	a2, _ := s.CreateApplication(ctx, application.Insert{JobID: 1, WorkerID: 11})
	s.CreateApplication(ctx, application.Insert{JobID: 2, WorkerID: 10})

	if a1.Status != application.StatusPending {
		t.Fatalf("new application status = %q; want pending", a1.Status)
	}

	byJob, _ := s.ListApplications(ctx, application.Query{JobID: 1})
	if len(byJob) != 2 || byJob[0].ID != a2.ID {
		t.Fatalf("job filter newest-first: got %d, first id %d", len(byJob), byJob[0].ID)
	}

	pair, _ := s.ListApplications(ctx, application.Query{JobID: 1, WorkerID: 10})
	if len(pair) != 1 || pair[0].ID != a1.ID {
		t.Fatalf("pair filter: got %d", len(pair))
	}

	st := application.StatusAccepted
	if _, err := s.UpdateApplication(ctx, a1.ID, application.Update{Status: &st}); err != nil {
		t.Fatalf("UpdateApplication: %v", err)
	}
	accepted, _ := s.ListApplications(ctx, application.Query{Status: application.StatusAccepted})
	if len(accepted) != 1 || accepted[0].ID != a1.ID {
		t.Fatalf("status filter: got %d", len(accepted))
	}
}

func TestStore_Conversations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, s, "alice", user.TypeWorker)
	bob := mustCreateUser(t, s, "bob", user.TypeEmployer)
	carol := mustCreateUser(t, s, "carol", user.TypeEmployer)

	m1, _ := s.CreateMessage(ctx, message.Insert{FromUserID: alice.ID, ToUserID: bob.ID, Content: "hi bob"})
	s.CreateMessage(ctx, message.Insert{FromUserID: carol.ID, ToUserID: alice.ID, Content: "hi alice"})
	m3, _ := s.CreateMessage(ctx, message.Insert{FromUserID: bob.ID, ToUserID: alice.ID, Content: "hello"})
	s.CreateMessage(ctx, message.Insert{FromUserID: bob.ID, ToUserID: carol.ID, Content: "not alice's thread"})

	if m1.Read {
		t.Fatalf("new message must start unread")
	}

	conv, err := s.Conversation(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(conv) != 2 || conv[0].ID != m1.ID || conv[1].ID != m3.ID {
		t.Fatalf("conversation must be chronological and pair-scoped: %+v", conv)
	}

	list, err := s.UserConversations(ctx, alice.ID)
	if err != nil {
		t.Fatalf("UserConversations: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("alice has 2 counterparts, got %d", len(list))
	}
	if list[0].OtherUser.ID != bob.ID || list[0].LastMessage.ID != m3.ID {
		t.Fatalf("most recent thread first: got other=%d last=%d", list[0].OtherUser.ID, list[0].LastMessage.ID)
	}
	if list[1].OtherUser.ID != carol.ID {
		t.Fatalf("second thread should be carol, got %d", list[1].OtherUser.ID)
	}
}

func TestStore_MarkMessageRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, _ := s.CreateMessage(ctx, message.Insert{FromUserID: 1, ToUserID: 2, Content: "x"})
	if err := s.MarkMessageRead(ctx, m.ID); err != nil {
		t.Fatalf("MarkMessageRead: %v", err)
	}
	got, _ := s.GetMessage(ctx, m.ID)
	if !got.Read {
		t.Fatalf("message not marked read")
	}

	if err := s.MarkMessageRead(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func ids(jobs []job.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func userIDs(users []user.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestStore_CreateUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "maria", user.TypeWorker)
	if _, err := s.CreateUser(ctx, user.Insert{Username: "maria", PasswordHash: "y", Type: user.TypeEmployer}); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("reused username: want ErrDuplicate, got %v", err)
	}
}

func TestStore_CreateApplication_DuplicatePair(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateApplication(ctx, application.Insert{JobID: 1, WorkerID: 10}); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := s.CreateApplication(ctx, application.Insert{JobID: 1, WorkerID: 10}); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("repeat (job, worker): want ErrDuplicate, got %v", err)
	}

	// A rejected application still blocks the pair.
	st := application.StatusRejected
	first, _ := s.ListApplications(ctx, application.Query{JobID: 1, WorkerID: 10})
	if _, err := s.UpdateApplication(ctx, first[0].ID, application.Update{Status: &st}); err != nil {
		t.Fatalf("UpdateApplication: %v", err)
	}
	if _, err := s.CreateApplication(ctx, application.Insert{JobID: 1, WorkerID: 10}); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("pair after rejection: want ErrDuplicate, got %v", err)
	}

	// Other pairs stay open.
	if _, err := s.CreateApplication(ctx, application.Insert{JobID: 2, WorkerID: 10}); err != nil {
		t.Fatalf("distinct job: %v", err)
	}
	if _, err := s.CreateApplication(ctx, application.Insert{JobID: 1, WorkerID: 11}); err != nil {
		t.Fatalf("distinct worker: %v", err)
	}
}

func TestStore_CreateReview_DuplicateTriple(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	w := mustCreateUser(t, s, "w", user.TypeWorker)

	if _, err := s.CreateReview(ctx, review.Insert{JobID: 1, FromUserID: 2, ToUserID: w.ID, Rating: 5}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if _, err := s.CreateReview(ctx, review.Insert{JobID: 1, FromUserID: 2, ToUserID: w.ID, Rating: 1}); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("repeat triple: want ErrDuplicate, got %v", err)
	}

	// The rejected insert must not have touched the aggregate.
	got, _ := s.GetUser(ctx, w.ID)
	if got.Rating == nil || *got.Rating != 5 || got.ReviewCount != 1 {
		t.Fatalf("aggregate disturbed by rejected duplicate: %+v", got)
	}

	// The opposite direction on the same job is a different triple.
	if _, err := s.CreateReview(ctx, review.Insert{JobID: 1, FromUserID: w.ID, ToUserID: 2, Rating: 4}); err != nil {
		t.Fatalf("reverse direction: %v", err)
	}
}
