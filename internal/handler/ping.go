// File: internal/handler/ping.go
package handler

import (
	"context"
	"net/http"
	"time"

	"student-registry/internal/cache"
	"student-registry/internal/dto"
	"student-registry/internal/logger"

	"github.com/labstack/echo/v4"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingResponse is the health check body
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler checks the store and the cache
// @Summary     Health Check
// @Description Returns pong after checking the database and redis connections
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    OAuth2Password
// @Router      /ping [get]
func PingHandler(db Pinger, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("database ping failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, "ping", "pong", time.Second).Err(); err != nil {
			logger.Warn().Err(err).Msg("cache ping failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
