// File: internal/service/authenticator.go
package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"
	"portfolio/internal/store"
)

// ErrInvalidCredentials is returned for an unknown, inactive or
// wrong-password login alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	getActiveAdminByUsername = store.GetActiveAdminByUsername
	getAdminByID             = store.GetAdminByID
	touchAdminLastLogin      = store.TouchAdminLastLogin
)

type AuthResult struct {
	Token string
	Admin model.AdminSummary
}

type Authenticator struct {
	DB       database.DB
	Sessions *Sessions
}

func NewAuthenticator(db database.DB, sessions *Sessions) *Authenticator {
	return &Authenticator{DB: db, Sessions: sessions}
}

// Login checks the credentials, stamps last_login and opens a session.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	admin, err := getActiveAdminByUsername(ctx, a.DB, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	if err := ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if _, err := touchAdminLastLogin(ctx, a.DB, admin.ID); err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}

	summary := admin.Summary()
	token, err := a.Sessions.Issue(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	return &AuthResult{Token: token, Admin: summary}, nil
}

// Identify maps a session token to the admin it belongs to. The admin must
// still exist and be active; otherwise ErrSessionNotFound.
func (a *Authenticator) Identify(ctx context.Context, token string) (*model.AdminSummary, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	sess, err := a.Sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	admin, err := getAdminByID(ctx, a.DB, sess.AdminID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Identify: %w", err)
	}
	if !admin.IsActive {
		return nil, ErrSessionNotFound
	}
	summary := admin.Summary()
	return &summary, nil
}

func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.Sessions.Revoke(ctx, token)
}
