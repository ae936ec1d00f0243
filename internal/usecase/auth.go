package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/jwt"
	"laborlink/internal/storage"
)

type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
	FullName        string
	Type            user.Type
	Location        string
	Bio             string
	Phone           string
	Skills          []string
	Avatar          string
	Title           string
}

type LoginInput struct {
	Username string
	Password string
}

// TokenPair is an access/refresh token pair issued at login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	store storage.Storage
	jwt   jwt.Service
}

func NewAuthService(store storage.Storage, jwtSvc jwt.Service) *AuthService {
	return &AuthService{store: store, jwt: jwtSvc}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)

	if username == "" || email == "" || fullName == "" {
		return user.User{}, TokenPair{}, ErrValidation
	}
	if !in.Type.Valid() {
		return user.User{}, TokenPair{}, ErrValidation
	}
	if len(strings.TrimSpace(in.Password)) < 8 {
		return user.User{}, TokenPair{}, ErrValidation
	}
	if in.Password != in.ConfirmPassword {
		return user.User{}, TokenPair{}, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	created, err := s.store.CreateUser(ctx, user.Insert{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		FullName:     fullName,
		Type:         in.Type,
		Location:     strings.TrimSpace(in.Location),
		Bio:          strings.TrimSpace(in.Bio),
		Phone:        strings.TrimSpace(in.Phone),
		Skills:       in.Skills,
		Avatar:       strings.TrimSpace(in.Avatar),
		Title:        strings.TrimSpace(in.Title),
	})
	if err != nil {
		// The store holds the username-uniqueness line, so a racing second
		// registration of the same name fails here rather than slipping past
		// a stale existence check.
		if errors.Is(err, storage.ErrDuplicate) {
			return user.User{}, TokenPair{}, ErrDuplicate
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := s.issueTokens(created)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(created), pair, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrNotAuthenticated
	}

	u, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrNotAuthenticated
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrNotAuthenticated
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(u), pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The user record
// is re-read so a role claim can never outlive the account.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil || !s.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrNotAuthenticated
	}

	u, err := s.store.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return TokenPair{}, ErrNotAuthenticated
		}
		return TokenPair{}, ErrInternal
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (s *AuthService) issueTokens(u user.User) (TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID, u.Username, string(u.Type))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID, string(u.Type))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
