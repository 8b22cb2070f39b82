package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// seedTx answers existence checks from populated and counts inserts per table.
func seedTx(populated map[string]bool, adminExists bool) (*database.FakeTx, map[string]int) {
	inserts := map[string]int{}
	tx := &database.FakeTx{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		switch {
		case strings.Contains(sql, "FROM admin_users WHERE username"):
			return fakeRow{vals: []any{adminExists}}
		case strings.HasPrefix(sql, "SELECT EXISTS"):
			table := strings.TrimSuffix(strings.TrimPrefix(sql, "SELECT EXISTS (SELECT 1 FROM "), ")")
			return fakeRow{vals: []any{populated[table]}}
		case strings.HasPrefix(sql, "INSERT INTO "):
			table := strings.Fields(strings.TrimPrefix(sql, "INSERT INTO "))[0]
			inserts[table]++
			switch table {
			case "admin_users", "contact_messages":
				return fakeRow{vals: []any{inserts[table], now}}
			default:
				return fakeRow{vals: []any{inserts[table], now, now}}
			}
		}
		panic("unexpected query: " + sql)
	}}
	return tx, inserts
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	admin := model.AdminUser{Username: "admin", PasswordHash: "hash", Email: "admin@mahmoudglala.com"}

	t.Run("empty database", func(t *testing.T) {
		tx, inserts := seedTx(map[string]bool{}, false)
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		seeded, err := SeedDefaults(ctx, db, admin)
		require.NoError(t, err)
		require.True(t, tx.Committed)
		require.Equal(t, []string{"admin_users", "personal_info", "projects", "skills", "experience", "education", "languages"}, seeded)
		require.Equal(t, map[string]int{
			"admin_users":   1,
			"personal_info": 1,
			"projects":      3,
			"skills":        11,
			"experience":    1,
			"education":     1,
			"languages":     2,
		}, inserts)
	})

	t.Run("populated tables are left alone", func(t *testing.T) {
		tx, inserts := seedTx(map[string]bool{
			"personal_info": true,
			"projects":      true,
			"skills":        true,
			"experience":    true,
			"education":     true,
		}, true)
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		seeded, err := SeedDefaults(ctx, db, admin)
		require.NoError(t, err)
		require.Equal(t, []string{"languages"}, seeded)
		require.Equal(t, map[string]int{"languages": 2}, inserts)
	})

	t.Run("insert failure rolls back everything", func(t *testing.T) {
		tx := &database.FakeTx{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			if strings.HasPrefix(sql, "SELECT EXISTS") {
				return fakeRow{vals: []any{false}}
			}
			return fakeRow{err: errors.New("disk full")}
		}}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		seeded, err := SeedDefaults(ctx, db, admin)
		require.ErrorContains(t, err, "disk full")
		require.Nil(t, seeded)
		require.True(t, tx.RolledBack)
	})
}

func TestSeedDataShape(t *testing.T) {
	for _, p := range defaultProjects() {
		require.True(t, p.IsFeatured, p.Title)
		require.NotEmpty(t, p.Technologies, p.Title)
		require.Len(t, p.Features, 8, p.Title)
	}
	for _, s := range defaultSkills() {
		require.GreaterOrEqual(t, s.Level, 0)
		require.LessOrEqual(t, s.Level, 100)
	}
	langs := defaultLanguages()
	require.Equal(t, "Arabic", langs[0].Name)
	require.Equal(t, "Native", langs[0].Level)
}
