// File: internal/model/experience.go
package model

import "time"

type Experience struct {
	ID               int       `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Company          string    `db:"company" json:"company"`
	Period           string    `db:"period" json:"period"`
	Location         string    `db:"location" json:"location"`
	Description      string    `db:"description" json:"description"`
	Responsibilities []string  `db:"responsibilities" json:"responsibilities"`
	Projects         []string  `db:"projects" json:"projects"`
	OrderIndex       int       `db:"order_index" json:"order_index"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type ExperiencePatch struct {
	Title            *string   `json:"title"`
	Company          *string   `json:"company"`
	Period           *string   `json:"period"`
	Location         *string   `json:"location"`
	Description      *string   `json:"description"`
	Responsibilities *[]string `json:"responsibilities"`
	Projects         *[]string `json:"projects"`
	OrderIndex       *int      `json:"order_index"`
}

func (p ExperiencePatch) Apply(dst *Experience) {
	setString(&dst.Title, p.Title)
	setString(&dst.Company, p.Company)
	setString(&dst.Period, p.Period)
	setString(&dst.Location, p.Location)
	setString(&dst.Description, p.Description)
	setList(&dst.Responsibilities, p.Responsibilities)
	setList(&dst.Projects, p.Projects)
	setInt(&dst.OrderIndex, p.OrderIndex)
}
