package store

import (
	"context"
	"fmt"

	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/jackc/pgx/v5"
)

const contactMessageColumns = `id, name, email, subject, message, is_read, created_at`

func scanContactMessage(row pgx.Row) (model.ContactMessage, error) {
	var m model.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
	return m, err
}

// CreateContactMessage 新增留言，一律為未讀
func CreateContactMessage(ctx context.Context, db database.Querier, m *model.ContactMessage) (*model.ContactMessage, error) {
	m.IsRead = false
	row := db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, is_read)
		 VALUES ($1, $2, $3, $4, FALSE)
		 RETURNING id, created_at`,
		m.Name,
		m.Email,
		m.Subject,
		m.Message,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateContactMessage: %w", err)
	}
	return m, nil
}

// ListContactMessages 取得所有留言，新的在前
func ListContactMessages(ctx context.Context, db database.Querier) ([]model.ContactMessage, error) {
	rows, err := db.Query(ctx, `SELECT `+contactMessageColumns+` FROM contact_messages ORDER BY created_at DESC, id DESC`)
	msgs, err := collect(rows, err, scanContactMessage)
	if err != nil {
		return nil, fmt.Errorf("ListContactMessages: %w", err)
	}
	return msgs, nil
}

func ListRecentContactMessages(ctx context.Context, db database.Querier, limit int) ([]model.ContactMessage, error) {
	rows, err := db.Query(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	msgs, err := collect(rows, err, scanContactMessage)
	if err != nil {
		return nil, fmt.Errorf("ListRecentContactMessages: %w", err)
	}
	return msgs, nil
}

// MarkContactMessageRead 標記為已讀，可重複呼叫
func MarkContactMessageRead(ctx context.Context, db database.Querier, id int) (*model.ContactMessage, error) {
	m, err := scanContactMessage(db.QueryRow(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE id = $1 RETURNING `+contactMessageColumns,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("MarkContactMessageRead: %w", notFound(err))
	}
	return &m, nil
}
