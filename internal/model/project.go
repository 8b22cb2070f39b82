// File: internal/model/project.go
package model

import "time"

const DefaultProjectStatus = "Live"

type Project struct {
	ID              int       `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Subtitle        string    `db:"subtitle" json:"subtitle"`
	Description     string    `db:"description" json:"description"`
	LongDescription string    `db:"long_description" json:"long_description"`
	Technologies    []string  `db:"technologies" json:"technologies"`
	Features        []string  `db:"features" json:"features"`
	ImageURL        string    `db:"image_url" json:"image_url"`
	LiveURL         string    `db:"live_url" json:"live_url"`
	GithubURL       string    `db:"github_url" json:"github_url"`
	Status          string    `db:"status" json:"status"`
	IsFeatured      bool      `db:"is_featured" json:"is_featured"`
	OrderIndex      int       `db:"order_index" json:"order_index"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type ProjectPatch struct {
	Title           *string   `json:"title"`
	Subtitle        *string   `json:"subtitle"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	Technologies    *[]string `json:"technologies"`
	Features        *[]string `json:"features"`
	ImageURL        *string   `json:"image_url"`
	LiveURL         *string   `json:"live_url"`
	GithubURL       *string   `json:"github_url"`
	Status          *string   `json:"status"`
	IsFeatured      *bool     `json:"is_featured"`
	OrderIndex      *int      `json:"order_index"`
}

func (p ProjectPatch) Apply(dst *Project) {
	setString(&dst.Title, p.Title)
	setString(&dst.Subtitle, p.Subtitle)
	setString(&dst.Description, p.Description)
	setString(&dst.LongDescription, p.LongDescription)
	setList(&dst.Technologies, p.Technologies)
	setList(&dst.Features, p.Features)
	setString(&dst.ImageURL, p.ImageURL)
	setString(&dst.LiveURL, p.LiveURL)
	setString(&dst.GithubURL, p.GithubURL)
	setString(&dst.Status, p.Status)
	setBool(&dst.IsFeatured, p.IsFeatured)
	setInt(&dst.OrderIndex, p.OrderIndex)
}
