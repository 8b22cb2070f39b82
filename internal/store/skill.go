package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const skillColumns = `id, name, category, level, description, order_index, created_at, updated_at`

func scanSkill(row pgx.Row) (model.Skill, error) {
	var s model.Skill
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Level,
		&s.Description,
		&s.OrderIndex,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// ListSkills 依 category、order_index 排序
func ListSkills(ctx context.Context, db database.Querier) ([]model.Skill, error) {
	rows, err := db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY category ASC, order_index ASC`)
	skills, err := collect(rows, err, scanSkill)
	if err != nil {
		return nil, fmt.Errorf("ListSkills: %w", err)
	}
	return skills, nil
}

func GetSkillByID(ctx context.Context, db database.Querier, id int) (*model.Skill, error) {
	s, err := scanSkill(db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetSkillByID: %w", notFound(err))
	}
	return &s, nil
}

func CreateSkill(ctx context.Context, db database.Querier, s *model.Skill) (*model.Skill, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO skills (name, category, level, description, order_index)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.Name,
		s.Category,
		s.Level,
		s.Description,
		s.OrderIndex,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateSkill: %w", err)
	}
	return s, nil
}

func UpdateSkill(ctx context.Context, db database.DB, id int, patch model.SkillPatch) (*model.Skill, error) {
	var updated model.Skill
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		s, err := scanSkill(tx.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err)
		}
		patch.Apply(&s)
		if err := tx.QueryRow(ctx,
			`UPDATE skills
			 SET name = $1, category = $2, level = $3, description = $4, order_index = $5, updated_at = now()
			 WHERE id = $6
			 RETURNING updated_at`,
			s.Name,
			s.Category,
			s.Level,
			s.Description,
			s.OrderIndex,
			id,
		).Scan(&s.UpdatedAt); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateSkill: %w", err)
	}
	return &updated, nil
}

func DeleteSkill(ctx context.Context, db database.Querier, id int) error {
	if err := deleteByID(ctx, db, "skills", id); err != nil {
		return fmt.Errorf("DeleteSkill: %w", err)
	}
	return nil
}
