package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/jwt"
)

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func validRegisterInput(username string, typ user.Type) RegisterInput {
	return RegisterInput{
		Username:        username,
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		Email:           username + "@example.com",
		FullName:        "Test User",
		Type:            typ,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	st := newTestStorage(t)
	svc := NewAuthService(st, newTestJWT())

	u, pair, err := svc.Register(context.Background(), validRegisterInput("maria", user.TypeWorker))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked out of Register")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	stored, err := st.GetUserByUsername(context.Background(), "maria")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "hunter2hunter2" {
		t.Fatalf("password not hashed at rest")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	st := newTestStorage(t)
	svc := NewAuthService(st, newTestJWT())

	if _, _, err := svc.Register(context.Background(), validRegisterInput("maria", user.TypeWorker)); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), validRegisterInput("maria", user.TypeEmployer))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newTestStorage(t), newTestJWT())

	short := validRegisterInput("maria", user.TypeWorker)
	short.Password = "short"
	short.ConfirmPassword = "short"
	if _, _, err := svc.Register(context.Background(), short); !errors.Is(err, ErrValidation) {
		t.Fatalf("short password: expected ErrValidation, got %v", err)
	}

	mismatch := validRegisterInput("maria", user.TypeWorker)
	mismatch.ConfirmPassword = "something-else"
	if _, _, err := svc.Register(context.Background(), mismatch); !errors.Is(err, ErrValidation) {
		t.Fatalf("confirm mismatch: expected ErrValidation, got %v", err)
	}

	badType := validRegisterInput("maria", user.Type("admin"))
	if _, _, err := svc.Register(context.Background(), badType); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad type: expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	st := newTestStorage(t)
	svc := NewAuthService(st, newTestJWT())

	if _, _, err := svc.Register(context.Background(), validRegisterInput("maria", user.TypeWorker)); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, pair, err := svc.Login(context.Background(), LoginInput{Username: "maria", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Username != "maria" || pair.AccessToken == "" {
		t.Fatalf("unexpected login result")
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked out of Login")
	}

	if _, _, err := svc.Login(context.Background(), LoginInput{Username: "maria", Password: "wrong"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("wrong password: expected ErrNotAuthenticated, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "hunter2hunter2"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("unknown user: expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	st := newTestStorage(t)
	svc := NewAuthService(st, newTestJWT())

	_, pair, err := svc.Register(context.Background(), validRegisterInput("maria", user.TypeWorker))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("access token: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("refresh token: %v", err)
	}
}

func TestAuthService_Register_ConcurrentUsernameSingleWinner(t *testing.T) {
	st := newTestStorage(t)
	svc := NewAuthService(st, newTestJWT())

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Register(context.Background(), validRegisterInput("grace.lim", user.TypeWorker))
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrDuplicate):
			dup++
		default:
			t.Fatalf("unexpected error from concurrent register: %v", err)
		}
	}
	if ok != 1 || dup != attempts-1 {
		t.Fatalf("racing registrations: %d succeeded, %d duplicate; want exactly one winner", ok, dup)
	}
}
