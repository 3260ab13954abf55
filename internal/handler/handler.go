package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/validation"
)

// UserContextKey is where the auth middleware stores the verified user id.
const UserContextKey = "user"

// currentUserID returns the authenticated caller's id set by the auth
// middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "Invalid token. Please login again",
			Code:  "UNAUTHENTICATED",
		})
	}
	return userID, nil
}

// respondError maps service errors to HTTP errors. Validation errors surface
// the first violated rule's message; everything unexpected collapses to a
// generic 500, with internal detail attached only in development.
func respondError(err error, debug bool) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: vErr.Message,
			Code:  "VALIDATION_ERROR",
		})
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	resp := httpErr.ToErrorResponse()
	if debug && httpErr.Code == "INTERNAL_ERROR" {
		resp.Detail = err.Error()
	}
	return echo.NewHTTPError(httpErr.StatusCode, resp)
}
