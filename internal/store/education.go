package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const educationColumns = `id, degree, field, institution, period, description, order_index, created_at, updated_at`

func scanEducation(row pgx.Row) (model.Education, error) {
	var e model.Education
	err := row.Scan(
		&e.ID,
		&e.Degree,
		&e.Field,
		&e.Institution,
		&e.Period,
		&e.Description,
		&e.OrderIndex,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func ListEducation(ctx context.Context, db database.Querier) ([]model.Education, error) {
	rows, err := db.Query(ctx, `SELECT `+educationColumns+` FROM education ORDER BY order_index ASC, created_at DESC`)
	items, err := collect(rows, err, scanEducation)
	if err != nil {
		return nil, fmt.Errorf("ListEducation: %w", err)
	}
	return items, nil
}

func GetEducationByID(ctx context.Context, db database.Querier, id int) (*model.Education, error) {
	e, err := scanEducation(db.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetEducationByID: %w", notFound(err))
	}
	return &e, nil
}

func CreateEducation(ctx context.Context, db database.Querier, e *model.Education) (*model.Education, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO education (degree, field, institution, period, description, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		e.Degree,
		e.Field,
		e.Institution,
		e.Period,
		e.Description,
		e.OrderIndex,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateEducation: %w", err)
	}
	return e, nil
}

func UpdateEducation(ctx context.Context, db database.DB, id int, patch model.EducationPatch) (*model.Education, error) {
	var updated model.Education
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		e, err := scanEducation(tx.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err)
		}
		patch.Apply(&e)
		if err := tx.QueryRow(ctx,
			`UPDATE education
			 SET degree = $1, field = $2, institution = $3, period = $4, description = $5,
			     order_index = $6, updated_at = now()
			 WHERE id = $7
			 RETURNING updated_at`,
			e.Degree,
			e.Field,
			e.Institution,
			e.Period,
			e.Description,
			e.OrderIndex,
			id,
		).Scan(&e.UpdatedAt); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateEducation: %w", err)
	}
	return &updated, nil
}

func DeleteEducation(ctx context.Context, db database.Querier, id int) error {
	if err := deleteByID(ctx, db, "education", id); err != nil {
		return fmt.Errorf("DeleteEducation: %w", err)
	}
	return nil
}
