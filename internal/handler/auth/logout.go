// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"student-registry/internal/apperrors"
	"student-registry/internal/handler"
	"student-registry/internal/middleware"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler revokes the presented token
// @Summary     Log out
// @Description Ends the current session. Other sessions of the user stay valid.
// @Tags        auth
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /auth/logout [post]
func LogoutHandler(gate *service.Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentClaims(c)
		if claims == nil {
			return handler.WriteError(c, apperrors.ErrUnauthenticated)
		}
		if err := gate.Revoke(c.Request().Context(), claims); err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
