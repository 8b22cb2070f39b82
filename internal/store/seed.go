package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

// SeedDefaults 建立管理員帳號並在空表中寫入預設內容；
// 已有資料的表不會重複寫入。回傳有寫入的表名。
func SeedDefaults(ctx context.Context, db database.DB, admin model.AdminUser) ([]string, error) {
	admin.IsActive = true
	var seeded []string
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		seeded = seeded[:0]

		var adminExists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM admin_users WHERE username = $1)`,
			admin.Username,
		).Scan(&adminExists); err != nil {
			return err
		}
		if !adminExists {
			if _, err := CreateAdminUser(ctx, tx, &admin); err != nil {
				return err
			}
			seeded = append(seeded, "admin_users")
		}

		steps := []struct {
			table string
			seed  func() error
		}{
			{"personal_info", func() error {
				p := model.DefaultPersonalInfo()
				p.Summary = defaultSummary
				return insertPersonalInfo(ctx, tx, &p)
			}},
			{"projects", func() error {
				for _, p := range defaultProjects() {
					if _, err := CreateProject(ctx, tx, &p); err != nil {
						return err
					}
				}
				return nil
			}},
			{"skills", func() error {
				for _, s := range defaultSkills() {
					if _, err := CreateSkill(ctx, tx, &s); err != nil {
						return err
					}
				}
				return nil
			}},
			{"experience", func() error {
				for _, e := range defaultExperience() {
					if _, err := CreateExperience(ctx, tx, &e); err != nil {
						return err
					}
				}
				return nil
			}},
			{"education", func() error {
				for _, e := range defaultEducation() {
					if _, err := CreateEducation(ctx, tx, &e); err != nil {
						return err
					}
				}
				return nil
			}},
			{"languages", func() error {
				for _, l := range defaultLanguages() {
					if _, err := CreateLanguage(ctx, tx, &l); err != nil {
						return err
					}
				}
				return nil
			}},
		}
		for _, step := range steps {
			exists, err := tableHasRows(ctx, tx, step.table)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if err := step.seed(); err != nil {
				return fmt.Errorf("seed %s: %w", step.table, err)
			}
			seeded = append(seeded, step.table)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("SeedDefaults: %w", err)
	}
	return seeded, nil
}
