// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/api"
	"portfolio/internal/dto"
	"portfolio/internal/middleware"
	"portfolio/internal/service"

	"github.com/labstack/echo/v4"
)

// Authenticator 為 service.Authenticator 的登入/登出介面
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*service.AuthResult, error)
	Logout(ctx context.Context, token string) error
}

// LoginHandler 使用 Username/Password 驗證並建立 session
// @Summary     Admin login
// @Description Checks the credentials and sets the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "credentials"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Router      /admin/login [post]
func LoginHandler(auth Authenticator, cookie middleware.SessionCookie) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Username and password required"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Username and password required"))
		}

		res, err := auth.Login(c.Request().Context(), req.Username, req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.LoginAttempts.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, dto.Error("Invalid credentials"))
		}
		if err != nil {
			middleware.LoginAttempts.WithLabelValues("error").Inc()
			slog.Error("login failed", "username", req.Username, "err", err)
			return c.JSON(http.StatusInternalServerError, dto.Error(err.Error()))
		}

		middleware.LoginAttempts.WithLabelValues("success").Inc()
		cookie.Set(c, res.Token)
		return c.JSON(http.StatusOK, dto.LoginResponse{
			Success: true,
			Message: "Login successful",
			Admin:   res.Admin,
		})
	}
}

// LogoutHandler 刪除 session 並清除 cookie
// @Summary     Admin logout
// @Description Deletes the server-side session and expires the cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/logout [post]
func LogoutHandler(auth Authenticator, cookie middleware.SessionCookie) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := auth.Logout(c.Request().Context(), cookie.Token(c)); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error(err.Error()))
		}
		cookie.Clear(c)
		return c.JSON(http.StatusOK, dto.Message("Logged out successfully"))
	}
}

// CheckAuthHandler 回報目前請求是否帶有有效 session，永不回傳錯誤
// @Summary     Session status
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.CheckAuthResponse
// @Router      /admin/check-auth [get]
func CheckAuthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		admin := middleware.CurrentAdmin(c)
		return c.JSON(http.StatusOK, dto.CheckAuthResponse{
			Success:       true,
			Authenticated: admin != nil,
			Admin:         admin,
		})
	}
}
