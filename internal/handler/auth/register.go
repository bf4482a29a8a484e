// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"student-registry/internal/dto"
	"student-registry/internal/handler"
	"student-registry/internal/logger"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler creates a user account with role "user"
// @Summary     Register
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "credentials"
// @Success     201  {object} dto.MessageResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(accounts *service.Accounts) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.WriteError(c, err)
		}

		user, err := accounts.Register(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return handler.WriteError(c, err)
		}

		logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully"})
	}
}
