// File: internal/middleware/middleware.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/dto"
	"portfolio/internal/model"
	"portfolio/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextAdminKey = "admin"

// Identifier resolves a session token to its admin.
type Identifier interface {
	Identify(ctx context.Context, token string) (*model.AdminSummary, error)
}

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

const DefaultSessionCookieName = "portfolio_session"

func (sc SessionCookie) name() string {
	if sc.Name == "" {
		return DefaultSessionCookieName
	}
	return sc.Name
}

// Token returns the raw session token, or "" when the cookie is absent.
func (sc SessionCookie) Token(c echo.Context) string {
	ck, err := c.Cookie(sc.name())
	if err != nil {
		return ""
	}
	return ck.Value
}

func (sc SessionCookie) Set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.name(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(sc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate attaches the admin behind the session cookie, if any. It
// never rejects a request; RequireAuth does that.
func Authenticate(ids Identifier, cookie SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := cookie.Token(c)
			if token == "" {
				return next(c)
			}
			admin, err := ids.Identify(c.Request().Context(), token)
			switch {
			case err == nil:
				c.Set(ContextAdminKey, admin)
			case errors.Is(err, service.ErrSessionNotFound):
			default:
				slog.Warn("session lookup failed", "path", c.Path(), "err", err)
			}
			return next(c)
		}
	}
}

// CurrentAdmin returns the admin attached by Authenticate, or nil.
func CurrentAdmin(c echo.Context) *model.AdminSummary {
	admin, _ := c.Get(ContextAdminKey).(*model.AdminSummary)
	return admin
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentAdmin(c) == nil {
			return c.JSON(http.StatusUnauthorized, dto.Error("Authentication required"))
		}
		return next(c)
	}
}
