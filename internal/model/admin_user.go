// File: internal/model/admin_user.go
package model

import "time"

type AdminUser struct {
	ID           int        `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Email        string     `db:"email" json:"email"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// AdminSummary is the identity attached to an authenticated request.
type AdminSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u AdminUser) Summary() AdminSummary {
	return AdminSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
