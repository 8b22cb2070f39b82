// File: internal/api/requests.go
package api

// LoginRequest is the JSON body of POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"admin123"`
}

// ContactRequest is the visitor contact form. All four fields are required.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required"`
	Subtitle        string   `json:"subtitle"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"long_description"`
	Technologies    []string `json:"technologies"`
	Features        []string `json:"features"`
	ImageURL        string   `json:"image_url"`
	LiveURL         string   `json:"live_url"`
	GithubURL       string   `json:"github_url"`
	Status          string   `json:"status"`
	IsFeatured      bool     `json:"is_featured"`
	OrderIndex      int      `json:"order_index"`
}

// CreateSkillRequest uses a pointer level so an absent level can default to 50.
type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Level       *int   `json:"level" validate:"omitempty,min=0,max=100"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type CreateExperienceRequest struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Period           string   `json:"period"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Projects         []string `json:"projects"`
	OrderIndex       int      `json:"order_index"`
}

type CreateEducationRequest struct {
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`
	Institution string `json:"institution" validate:"required"`
	Period      string `json:"period"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type CreateLanguageRequest struct {
	Name       string `json:"name" validate:"required"`
	Level      string `json:"level" validate:"required"`
	OrderIndex int    `json:"order_index"`
}
