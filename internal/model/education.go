// File: internal/model/education.go
package model

import "time"

type Education struct {
	ID          int       `db:"id" json:"id"`
	Degree      string    `db:"degree" json:"degree"`
	Field       string    `db:"field" json:"field"`
	Institution string    `db:"institution" json:"institution"`
	Period      string    `db:"period" json:"period"`
	Description string    `db:"description" json:"description"`
	OrderIndex  int       `db:"order_index" json:"order_index"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type EducationPatch struct {
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	Institution *string `json:"institution"`
	Period      *string `json:"period"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

func (p EducationPatch) Apply(dst *Education) {
	setString(&dst.Degree, p.Degree)
	setString(&dst.Field, p.Field)
	setString(&dst.Institution, p.Institution)
	setString(&dst.Period, p.Period)
	setString(&dst.Description, p.Description)
	setInt(&dst.OrderIndex, p.OrderIndex)
}
