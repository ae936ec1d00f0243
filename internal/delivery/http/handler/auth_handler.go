package handler

import (
	"strings"

	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc *usecase.AuthService
}

type registerRequest struct {
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
	Email           string   `json:"email"`
	FullName        string   `json:"full_name"`
	UserType        string   `json:"user_type"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	Avatar          string   `json:"avatar"`
	Title           string   `json:"title"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(uc *usecase.AuthService) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, pair, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
		FullName:        req.FullName,
		Type:            user.Type(req.UserType),
		Location:        req.Location,
		Bio:             req.Bio,
		Phone:           req.Phone,
		Skills:          req.Skills,
		Avatar:          req.Avatar,
		Title:           req.Title,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusConflict:   "Username already taken",
			fiber.StatusBadRequest: "Invalid registration payload",
		})
	}

	data := map[string]any{
		"user":          dto.FromUser(usr),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, pair, err := h.uc.Login(c.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusUnauthorized: "Invalid username or password",
		})
	}

	data := map[string]any{
		"user":          dto.FromUser(usr),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusUnauthorized: "Invalid refresh token",
		})
	}

	data := map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
