package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const languageColumns = `id, name, level, order_index, created_at, updated_at`

func scanLanguage(row pgx.Row) (model.Language, error) {
	var l model.Language
	err := row.Scan(&l.ID, &l.Name, &l.Level, &l.OrderIndex, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func ListLanguages(ctx context.Context, db database.Querier) ([]model.Language, error) {
	rows, err := db.Query(ctx, `SELECT `+languageColumns+` FROM languages ORDER BY order_index ASC`)
	items, err := collect(rows, err, scanLanguage)
	if err != nil {
		return nil, fmt.Errorf("ListLanguages: %w", err)
	}
	return items, nil
}

func GetLanguageByID(ctx context.Context, db database.Querier, id int) (*model.Language, error) {
	l, err := scanLanguage(db.QueryRow(ctx, `SELECT `+languageColumns+` FROM languages WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetLanguageByID: %w", notFound(err))
	}
	return &l, nil
}

func CreateLanguage(ctx context.Context, db database.Querier, l *model.Language) (*model.Language, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO languages (name, level, order_index)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		l.Name,
		l.Level,
		l.OrderIndex,
	)
	if err := row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateLanguage: %w", err)
	}
	return l, nil
}

func UpdateLanguage(ctx context.Context, db database.DB, id int, patch model.LanguagePatch) (*model.Language, error) {
	var updated model.Language
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		l, err := scanLanguage(tx.QueryRow(ctx, `SELECT `+languageColumns+` FROM languages WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err)
		}
		patch.Apply(&l)
		if err := tx.QueryRow(ctx,
			`UPDATE languages SET name = $1, level = $2, order_index = $3, updated_at = now()
			 WHERE id = $4
			 RETURNING updated_at`,
			l.Name,
			l.Level,
			l.OrderIndex,
			id,
		).Scan(&l.UpdatedAt); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateLanguage: %w", err)
	}
	return &updated, nil
}

func DeleteLanguage(ctx context.Context, db database.Querier, id int) error {
	if err := deleteByID(ctx, db, "languages", id); err != nil {
		return fmt.Errorf("DeleteLanguage: %w", err)
	}
	return nil
}
