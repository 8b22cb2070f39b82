// File: internal/dto/public.go
package dto

import (
	"time"

	"portfolio/internal/model"
)

// Public projections drop bookkeeping columns (timestamps, order_index).

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

func NewPersonalInfo(p model.PersonalInfo) PersonalInfo {
	return PersonalInfo{
		Name:     p.Name,
		Title:    p.Title,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Summary:  p.Summary,
	}
}

type Project struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Technologies    []string `json:"technologies"`
	Features        []string `json:"features"`
	ImageURL        string   `json:"image_url"`
	LiveURL         string   `json:"live_url"`
	GithubURL       string   `json:"github_url"`
	Status          string   `json:"status"`
	IsFeatured      bool     `json:"is_featured"`
}

func NewProject(p model.Project) Project {
	return Project{
		ID:              p.ID,
		Title:           p.Title,
		Subtitle:        p.Subtitle,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Technologies:    p.Technologies,
		Features:        p.Features,
		ImageURL:        p.ImageURL,
		LiveURL:         p.LiveURL,
		GithubURL:       p.GithubURL,
		Status:          p.Status,
		IsFeatured:      p.IsFeatured,
	}
}

func NewProjects(ps []model.Project) []Project {
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProject(p))
	}
	return out
}

type Skill struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// GroupSkills buckets skills by category, keeping the incoming order inside
// each bucket. Categories come out as JSON object keys.
func GroupSkills(skills []model.Skill) map[string][]Skill {
	out := make(map[string][]Skill)
	for _, s := range skills {
		out[s.Category] = append(out[s.Category], Skill{
			ID:          s.ID,
			Name:        s.Name,
			Level:       s.Level,
			Description: s.Description,
		})
	}
	return out
}

type Experience struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Projects         []string `json:"projects"`
}

func NewExperience(es []model.Experience) []Experience {
	out := make([]Experience, 0, len(es))
	for _, e := range es {
		out = append(out, Experience{
			ID:               e.ID,
			Title:            e.Title,
			Company:          e.Company,
			Period:           e.Period,
			Location:         e.Location,
			Description:      e.Description,
			Responsibilities: e.Responsibilities,
			Projects:         e.Projects,
		})
	}
	return out
}

type Education struct {
	ID          int    `json:"id"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

func NewEducation(es []model.Education) []Education {
	out := make([]Education, 0, len(es))
	for _, e := range es {
		out = append(out, Education{
			ID:          e.ID,
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			Period:      e.Period,
			Description: e.Description,
		})
	}
	return out
}

type Language struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

func NewLanguages(ls []model.Language) []Language {
	out := make([]Language, 0, len(ls))
	for _, l := range ls {
		out = append(out, Language{ID: l.ID, Name: l.Name, Level: l.Level})
	}
	return out
}

// RecentMessage is the dashboard view of a contact message (no body).
type RecentMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

func NewRecentMessages(ms []model.ContactMessage) []RecentMessage {
	out := make([]RecentMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, RecentMessage{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			CreatedAt: m.CreatedAt,
			IsRead:    m.IsRead,
		})
	}
	return out
}
