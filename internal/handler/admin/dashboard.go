// File: internal/handler/admin/dashboard.go
package admin

import (
	"net/http"

	"portfolio/internal/database"
	"portfolio/internal/dto"
	"portfolio/internal/handler"

	"github.com/labstack/echo/v4"
)

const recentMessagesLimit = 5

// DashboardHandler 取得後台統計與最新留言
// @Summary     Dashboard
// @Description Content counts and the five newest contact messages
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.DashboardResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/dashboard [get]
func DashboardHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		stats, err := getDashboardStats(ctx, db)
		if err != nil {
			return handler.StoreError(c, "Dashboard", err)
		}
		recent, err := listRecentContactMessages(ctx, db, recentMessagesLimit)
		if err != nil {
			return handler.StoreError(c, "Dashboard", err)
		}
		return c.JSON(http.StatusOK, dto.DashboardResponse{
			Success:        true,
			Stats:          *stats,
			RecentMessages: dto.NewRecentMessages(recent),
		})
	}
}
