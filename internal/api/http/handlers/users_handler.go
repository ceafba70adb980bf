package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/api/dto"
	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/service"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// UsersHandler exposes account and session endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.FullName == "" || req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("email, full_name, username and password are required")
	}

	profile, err := h.auth.Register(c.UserContext(), req.Email, req.FullName, req.Username, req.Password)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "registration successful", profile)
}

// Login handles POST /auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required")
	}

	token, expiresAt, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "login successful", dto.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// Profile handles GET /auth/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	profile, err := h.auth.Profile(c.UserContext(), claims.Subject)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "profile retrieved", profile)
}

// Logout handles POST /auth/logout. The access guard guarantees the claims
// and raw token are present.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	raw, ok := auth.RawTokenFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	if err := h.auth.Logout(c.UserContext(), claims, raw); err != nil {
		return err
	}
	return success(c, http.StatusOK, "logout successful", nil)
}

// List handles GET /users (admin only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	profiles, err := h.auth.ListProfiles(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "users retrieved", profiles)
}
