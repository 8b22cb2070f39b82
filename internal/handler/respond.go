// File: internal/handler/respond.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"portfolio/internal/dto"
	"portfolio/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrInvalidID 表示 id 非正整數，視同資料不存在
var ErrInvalidID = errors.New("invalid id")

func ParseID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// NotFound 回傳 404 "<what> not found"
func NotFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, dto.Error(what+" not found"))
}

// StoreError 將 store 錯誤轉為 404 或 500（500 會回傳錯誤訊息）
func StoreError(c echo.Context, what string, err error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, ErrInvalidID) {
		return NotFound(c, what)
	}
	slog.Error("store failure", "method", c.Request().Method, "path", c.Path(), "err", err)
	return c.JSON(http.StatusInternalServerError, dto.Error(err.Error()))
}

// BadRequest 請求 body 無法解析時回傳 400
func BadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, dto.Error(fmt.Sprintf("invalid request body: %v", err)))
}

// ValidationMessage 將驗證錯誤轉為 "Missing or invalid fields: a, b"
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return "Missing or invalid fields: " + strings.Join(fields, ", ")
}

// HTTPErrorHandler 以統一格式回傳 handler 未處理的錯誤
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, dto.Error(msg))
	}
	if werr != nil {
		slog.Error("write error response", "err", werr)
	}
}
