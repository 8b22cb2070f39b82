package store

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const adminUserColumns = `id, username, password_hash, email, is_active, created_at, last_login`

func scanAdminUser(row pgx.Row) (model.AdminUser, error) {
	var u model.AdminUser
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.IsActive,
		&u.CreatedAt,
		&u.LastLogin,
	)
	return u, err
}

// GetActiveAdminByUsername 以 username 取得啟用中的管理員
func GetActiveAdminByUsername(ctx context.Context, db database.Querier, username string) (*model.AdminUser, error) {
	u, err := scanAdminUser(db.QueryRow(ctx,
		`SELECT `+adminUserColumns+` FROM admin_users WHERE username = $1 AND is_active = TRUE`,
		username,
	))
	if err != nil {
		return nil, fmt.Errorf("GetActiveAdminByUsername: %w", notFound(err))
	}
	return &u, nil
}

func GetAdminByID(ctx context.Context, db database.Querier, id int) (*model.AdminUser, error) {
	u, err := scanAdminUser(db.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetAdminByID: %w", notFound(err))
	}
	return &u, nil
}

func CreateAdminUser(ctx context.Context, db database.Querier, u *model.AdminUser) (*model.AdminUser, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admin_users (username, password_hash, email, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Username,
		u.PasswordHash,
		u.Email,
		u.IsActive,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAdminUser: %w", err)
	}
	return u, nil
}

func TouchAdminLastLogin(ctx context.Context, db database.Querier, id int) (time.Time, error) {
	var at time.Time
	if err := db.QueryRow(ctx,
		`UPDATE admin_users SET last_login = now() WHERE id = $1 RETURNING last_login`,
		id,
	).Scan(&at); err != nil {
		return at, fmt.Errorf("TouchAdminLastLogin: %w", notFound(err))
	}
	return at, nil
}
