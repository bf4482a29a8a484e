// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"student-registry/internal/dto"
	"student-registry/internal/handler"
	"student-registry/internal/logger"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler checks username and password and returns a bearer token
// @Summary     Log in
// @Description Verifies the credentials and returns an access token with its expiry
// @Tags        auth
// @Accept      application/x-www-form-urlencoded,json
// @Produce     json
// @Param       username formData string true "username"
// @Param       password formData string true "password"
// @Success     200      {object} dto.LoginResponse
// @Failure     400      {object} dto.HTTPError
// @Failure     401      {object} dto.HTTPError
// @Failure     500      {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(accounts *service.Accounts) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.WriteError(c, err)
		}

		sess, err := accounts.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return handler.WriteError(c, err)
		}

		logger.Info().Str("username", sess.User.Username).Msg("user logged in")
		return c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken: sess.Token,
			TokenType:   dto.TokenTypeBearer,
			ExpiresAt:   sess.ExpiresAt,
		})
	}
}
