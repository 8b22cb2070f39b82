// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"portfolio/internal/cache"
	"portfolio/internal/database"
	"portfolio/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description Returns pong after checking the database and the session store
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("database unhealthy"))
		}
		if err := sessions.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("session store unhealthy"))
		}
		return c.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	}
}
