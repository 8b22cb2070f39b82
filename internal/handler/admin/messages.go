// File: internal/handler/admin/messages.go
package admin

import (
	"context"
	"net/http"

	"portfolio/internal/database"
	"portfolio/internal/dto"
	"portfolio/internal/handler"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// ListMessagesHandler 列出所有聯絡留言
// @Summary     List contact messages
// @Description Newest first.
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.ContactMessage}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/messages [get]
func ListMessagesHandler(db database.DB) echo.HandlerFunc {
	return list("Messages", func(ctx context.Context) ([]model.ContactMessage, error) {
		return listContactMessages(ctx, db)
	})
}

// MarkMessageReadHandler 將留言標記為已讀
// @Summary     Mark a message read
// @Description Idempotent: marking a read message again succeeds.
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "message ID"
// @Success     200 {object} dto.Response{data=model.ContactMessage}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/messages/{id}/read [put]
func MarkMessageReadHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.NotFound(c, "Message")
		}
		m, err := markContactMessageRead(c.Request().Context(), db, id)
		if err != nil {
			return handler.StoreError(c, "Message", err)
		}
		return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Message marked as read", Data: m})
	}
}
