package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/listfield"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, title, subtitle, description, long_description, technologies, features,
	image_url, live_url, github_url, status, is_featured, order_index, created_at, updated_at`

func scanProject(row pgx.Row) (model.Project, error) {
	var p model.Project
	var technologies, features string
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Subtitle,
		&p.Description,
		&p.LongDescription,
		&technologies,
		&features,
		&p.ImageURL,
		&p.LiveURL,
		&p.GithubURL,
		&p.Status,
		&p.IsFeatured,
		&p.OrderIndex,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return p, err
	}
	p.Technologies = listfield.Decode(technologies)
	p.Features = listfield.Decode(features)
	return p, nil
}

// ListProjects 依 order_index 排序，相同時新的在前
func ListProjects(ctx context.Context, db database.Querier, featuredOnly bool) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if featuredOnly {
		query += ` WHERE is_featured = TRUE`
	}
	query += ` ORDER BY order_index ASC, created_at DESC`

	rows, err := db.Query(ctx, query)
	projects, err := collect(rows, err, scanProject)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func GetProjectByID(ctx context.Context, db database.Querier, id int) (*model.Project, error) {
	p, err := scanProject(db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", notFound(err))
	}
	return &p, nil
}

func CreateProject(ctx context.Context, db database.Querier, p *model.Project) (*model.Project, error) {
	if p.Status == "" {
		p.Status = model.DefaultProjectStatus
	}
	row := db.QueryRow(ctx,
		`INSERT INTO projects (title, subtitle, description, long_description, technologies, features,
		                       image_url, live_url, github_url, status, is_featured, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		p.Title,
		p.Subtitle,
		p.Description,
		p.LongDescription,
		listfield.Encode(p.Technologies),
		listfield.Encode(p.Features),
		p.ImageURL,
		p.LiveURL,
		p.GithubURL,
		p.Status,
		p.IsFeatured,
		p.OrderIndex,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p, nil
}

// UpdateProject 在同一 transaction 內鎖定資料列、套用 patch 並寫回
func UpdateProject(ctx context.Context, db database.DB, id int, patch model.ProjectPatch) (*model.Project, error) {
	var updated model.Project
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		p, err := scanProject(tx.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err)
		}
		patch.Apply(&p)
		if err := tx.QueryRow(ctx,
			`UPDATE projects
			 SET title = $1, subtitle = $2, description = $3, long_description = $4,
			     technologies = $5, features = $6, image_url = $7, live_url = $8, github_url = $9,
			     status = $10, is_featured = $11, order_index = $12, updated_at = now()
			 WHERE id = $13
			 RETURNING updated_at`,
			p.Title,
			p.Subtitle,
			p.Description,
			p.LongDescription,
			listfield.Encode(p.Technologies),
			listfield.Encode(p.Features),
			p.ImageURL,
			p.LiveURL,
			p.GithubURL,
			p.Status,
			p.IsFeatured,
			p.OrderIndex,
			id,
		).Scan(&p.UpdatedAt); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateProject: %w", err)
	}
	return &updated, nil
}

func DeleteProject(ctx context.Context, db database.Querier, id int) error {
	if err := deleteByID(ctx, db, "projects", id); err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	return nil
}
