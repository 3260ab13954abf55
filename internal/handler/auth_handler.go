package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/service"
)

// AuthHandler handles signup and signin endpoints.
type AuthHandler struct {
	authService service.AuthService
	debug       bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, debug bool) *AuthHandler {
	return &AuthHandler{authService: authService, debug: debug}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest represents a signin request.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse represents a successful signin.
type SigninResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name, email and password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	if _, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return respondError(err, h.debug)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User created successfully",
	})
}

// Signin godoc
// @Summary Sign in and receive a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Signin payload"
// @Success 200 {object} SigninResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Email and password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	token, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(err, h.debug)
	}

	return c.JSON(http.StatusOK, SigninResponse{
		Message: "Login successful",
		Token:   token,
	})
}
