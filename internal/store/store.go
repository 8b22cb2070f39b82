// Package store 存放各資源的 SQL；函式接受 database.Querier，
// 可直接使用連線池或在 transaction 內執行。
package store

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/database"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound 表示指定 id（或唯一的個人資料列）不存在
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func collect[T any](rows pgx.Rows, err error, scan func(pgx.Row) (T, error)) ([]T, error) {
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func deleteByID(ctx context.Context, db database.Querier, table string, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func tableHasRows(ctx context.Context, db database.Querier, table string) (bool, error) {
	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("tableHasRows %s: %w", table, err)
	}
	return exists, nil
}
