package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/listfield"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const experienceColumns = `id, title, company, period, location, description, responsibilities, projects,
	order_index, created_at, updated_at`

func scanExperience(row pgx.Row) (model.Experience, error) {
	var e model.Experience
	var responsibilities, projects string
	if err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Company,
		&e.Period,
		&e.Location,
		&e.Description,
		&responsibilities,
		&projects,
		&e.OrderIndex,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return e, err
	}
	e.Responsibilities = listfield.Decode(responsibilities)
	e.Projects = listfield.Decode(projects)
	return e, nil
}

func ListExperience(ctx context.Context, db database.Querier) ([]model.Experience, error) {
	rows, err := db.Query(ctx, `SELECT `+experienceColumns+` FROM experience ORDER BY order_index ASC, created_at DESC`)
	items, err := collect(rows, err, scanExperience)
	if err != nil {
		return nil, fmt.Errorf("ListExperience: %w", err)
	}
	return items, nil
}

func GetExperienceByID(ctx context.Context, db database.Querier, id int) (*model.Experience, error) {
	e, err := scanExperience(db.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experience WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetExperienceByID: %w", notFound(err))
	}
	return &e, nil
}

func CreateExperience(ctx context.Context, db database.Querier, e *model.Experience) (*model.Experience, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO experience (title, company, period, location, description, responsibilities, projects, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		e.Title,
		e.Company,
		e.Period,
		e.Location,
		e.Description,
		listfield.Encode(e.Responsibilities),
		listfield.Encode(e.Projects),
		e.OrderIndex,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateExperience: %w", err)
	}
	if e.Responsibilities == nil {
		e.Responsibilities = []string{}
	}
	if e.Projects == nil {
		e.Projects = []string{}
	}
	return e, nil
}

func UpdateExperience(ctx context.Context, db database.DB, id int, patch model.ExperiencePatch) (*model.Experience, error) {
	var updated model.Experience
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		e, err := scanExperience(tx.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experience WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err)
		}
		patch.Apply(&e)
		if err := tx.QueryRow(ctx,
			`UPDATE experience
			 SET title = $1, company = $2, period = $3, location = $4, description = $5,
			     responsibilities = $6, projects = $7, order_index = $8, updated_at = now()
			 WHERE id = $9
			 RETURNING updated_at`,
			e.Title,
			e.Company,
			e.Period,
			e.Location,
			e.Description,
			listfield.Encode(e.Responsibilities),
			listfield.Encode(e.Projects),
			e.OrderIndex,
			id,
		).Scan(&e.UpdatedAt); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateExperience: %w", err)
	}
	return &updated, nil
}

func DeleteExperience(ctx context.Context, db database.Querier, id int) error {
	if err := deleteByID(ctx, db, "experience", id); err != nil {
		return fmt.Errorf("DeleteExperience: %w", err)
	}
	return nil
}
