// File: internal/handler/errors.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"student-registry/internal/apperrors"
	"student-registry/internal/dto"
	"student-registry/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{apperrors.ErrDuplicateUsername, http.StatusBadRequest, "Username already exists"},
	{apperrors.ErrDuplicateEmail, http.StatusBadRequest, "Student with this email already exists"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized, "Could not validate credentials"},
	{apperrors.ErrUnauthenticated, http.StatusUnauthorized, "Could not validate credentials"},
	{apperrors.ErrInactiveAccount, http.StatusForbidden, "Inactive user"},
	{apperrors.ErrForbidden, http.StatusForbidden, "User cannot edit or delete the data"},
	{apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, "User not found"},
}

// WriteError renders err as a dto.HTTPError. Unknown errors become a 500
// and are logged; their text never reaches the client.
func WriteError(c echo.Context, err error) error {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			if r.status == http.StatusUnauthorized {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			}
			return c.JSON(r.status, dto.HTTPError{Message: r.message})
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: validationMessage(verrs)})
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return c.JSON(he.Code, dto.HTTPError{Message: fmt.Sprint(he.Message)})
	}

	logger.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := strings.ToLower(e.Field())
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must not be empty", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", field, e.Param()))
		case "maxbytes":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s bytes", field, e.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("field %s must be >= %s", field, e.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("field %s must be <= %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", field))
		}
	}
	return strings.Join(msgs, ", ")
}
