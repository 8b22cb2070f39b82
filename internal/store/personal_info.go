package store

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const personalInfoColumns = `id, name, title, email, phone, location, summary, created_at, updated_at`

func scanPersonalInfo(row pgx.Row) (model.PersonalInfo, error) {
	var p model.PersonalInfo
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.Summary,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// GetPersonalInfo 取得個人資料（id 最小的一列），不存在時回傳 ErrNotFound
func GetPersonalInfo(ctx context.Context, db database.Querier) (*model.PersonalInfo, error) {
	p, err := scanPersonalInfo(db.QueryRow(ctx, `SELECT `+personalInfoColumns+` FROM personal_info ORDER BY id LIMIT 1`))
	if err != nil {
		return nil, fmt.Errorf("GetPersonalInfo: %w", notFound(err))
	}
	return &p, nil
}

func insertPersonalInfo(ctx context.Context, db database.Querier, p *model.PersonalInfo) error {
	return db.QueryRow(ctx,
		`INSERT INTO personal_info (name, title, email, phone, location, summary)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		p.Name,
		p.Title,
		p.Email,
		p.Phone,
		p.Location,
		p.Summary,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// lockPersonalInfo 鎖表以序列化寫入；資料列尚未存在時無法使用 row lock
func lockPersonalInfo(ctx context.Context, tx pgx.Tx) (*model.PersonalInfo, error) {
	if _, err := tx.Exec(ctx, `LOCK TABLE personal_info IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, err
	}
	p, err := scanPersonalInfo(tx.QueryRow(ctx, `SELECT `+personalInfoColumns+` FROM personal_info ORDER BY id LIMIT 1`))
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// EnsurePersonalInfo 取得個人資料，表為空時以預設值建立
func EnsurePersonalInfo(ctx context.Context, db database.DB, defaults model.PersonalInfo) (*model.PersonalInfo, error) {
	var out model.PersonalInfo
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		p, err := lockPersonalInfo(ctx, tx)
		if err == nil {
			out = *p
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		out = defaults
		return insertPersonalInfo(ctx, tx, &out)
	})
	if err != nil {
		return nil, fmt.Errorf("EnsurePersonalInfo: %w", err)
	}
	return &out, nil
}

// UpsertPersonalInfo 套用 patch，資料不存在時以預設值為基礎新增
func UpsertPersonalInfo(ctx context.Context, db database.DB, defaults model.PersonalInfo, patch model.PersonalInfoPatch) (*model.PersonalInfo, error) {
	var out model.PersonalInfo
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		p, err := lockPersonalInfo(ctx, tx)
		if errors.Is(err, ErrNotFound) {
			out = defaults
			patch.Apply(&out)
			return insertPersonalInfo(ctx, tx, &out)
		}
		if err != nil {
			return err
		}
		out = *p
		patch.Apply(&out)
		return tx.QueryRow(ctx,
			`UPDATE personal_info
			 SET name = $1, title = $2, email = $3, phone = $4, location = $5, summary = $6, updated_at = now()
			 WHERE id = $7
			 RETURNING updated_at`,
			out.Name,
			out.Title,
			out.Email,
			out.Phone,
			out.Location,
			out.Summary,
			out.ID,
		).Scan(&out.UpdatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("UpsertPersonalInfo: %w", err)
	}
	return &out, nil
}
