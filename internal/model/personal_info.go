// File: internal/model/personal_info.go
package model

import "time"

type PersonalInfo struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Title     string    `db:"title" json:"title"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Location  string    `db:"location" json:"location"`
	Summary   string    `db:"summary" json:"summary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultPersonalInfo is served while the table is empty and used for the lazy row.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:     "Mahmoud Glala",
		Title:    "Full Stack Developer & UI/UX Enthusiast",
		Email:    "mahmoud.glala@example.com",
		Phone:    "+20 123 456 7890",
		Location: "Egypt",
		Summary:  "Highly motivated and results-oriented Full Stack Developer with a strong passion for creating innovative and user-centric web applications.",
	}
}

type PersonalInfoPatch struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Summary  *string `json:"summary"`
}

func (p PersonalInfoPatch) Apply(dst *PersonalInfo) {
	setString(&dst.Name, p.Name)
	setString(&dst.Title, p.Title)
	setString(&dst.Email, p.Email)
	setString(&dst.Phone, p.Phone)
	setString(&dst.Location, p.Location)
	setString(&dst.Summary, p.Summary)
}
