// File: internal/model/contact_message.go
package model

import "time"

type ContactMessage struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type DashboardStats struct {
	TotalProjects    int `json:"total_projects"`
	FeaturedProjects int `json:"featured_projects"`
	TotalSkills      int `json:"total_skills"`
	UnreadMessages   int `json:"unread_messages"`
	TotalMessages    int `json:"total_messages"`
}
