// File: internal/model/skill.go
package model

import "time"

const DefaultSkillLevel = 50

type Skill struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Level       int       `db:"level" json:"level"`
	Description string    `db:"description" json:"description"`
	OrderIndex  int       `db:"order_index" json:"order_index"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type SkillPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Level       *int    `json:"level" validate:"omitempty,min=0,max=100"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

func (p SkillPatch) Apply(dst *Skill) {
	setString(&dst.Name, p.Name)
	setString(&dst.Category, p.Category)
	setInt(&dst.Level, p.Level)
	setString(&dst.Description, p.Description)
	setInt(&dst.OrderIndex, p.OrderIndex)
}
