package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"
)

func GetDashboardStats(ctx context.Context, db database.Querier) (*model.DashboardStats, error) {
	s := &model.DashboardStats{}
	if err := db.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM projects),
		   (SELECT COUNT(*) FROM projects WHERE is_featured),
		   (SELECT COUNT(*) FROM skills),
		   (SELECT COUNT(*) FROM contact_messages WHERE NOT is_read),
		   (SELECT COUNT(*) FROM contact_messages)`,
	).Scan(
		&s.TotalProjects,
		&s.FeaturedProjects,
		&s.TotalSkills,
		&s.UnreadMessages,
		&s.TotalMessages,
	); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}
	return s, nil
}
