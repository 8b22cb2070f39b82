// File: internal/model/language.go
package model

import "time"

type Language struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Level      string    `db:"level" json:"level"`
	OrderIndex int       `db:"order_index" json:"order_index"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type LanguagePatch struct {
	Name       *string `json:"name"`
	Level      *string `json:"level"`
	OrderIndex *int    `json:"order_index"`
}

func (p LanguagePatch) Apply(dst *Language) {
	setString(&dst.Name, p.Name)
	setString(&dst.Level, p.Level)
	setInt(&dst.OrderIndex, p.OrderIndex)
}
