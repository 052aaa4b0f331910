package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nayrana/internal/model"
	"nayrana/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents an admin registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	// bcrypt only hashes the first 72 bytes, so longer passwords are rejected
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UserPayload is the public slice of a user.
type UserPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

func userPayload(user *model.User) UserPayload {
	return UserPayload{ID: user.ID, Username: user.Username}
}

// Login godoc
// @Summary Log in an admin user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error(), "VALIDATION_FAILED")
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: userPayload(user)})
}

// Register godoc
// @Summary Register an admin user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error(), "VALIDATION_FAILED")
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{Token: token, User: userPayload(user)})
}
