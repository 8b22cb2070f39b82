package dto

import (
	"encoding/json"
	"testing"

	"portfolio/internal/model"

	"github.com/stretchr/testify/require"
)

func TestGroupSkills(t *testing.T) {
	skills := []model.Skill{
		{ID: 1, Name: "Flask", Category: "Backend", Level: 85, OrderIndex: 0},
		{ID: 2, Name: "Python", Category: "Backend", Level: 90, OrderIndex: 1},
		{ID: 3, Name: "Git", Category: "Tools", Level: 80},
	}
	grouped := GroupSkills(skills)
	require.Len(t, grouped, 2)
	require.Equal(t, []Skill{{ID: 1, Name: "Flask", Level: 85}, {ID: 2, Name: "Python", Level: 90}}, grouped["Backend"])
	require.Equal(t, []Skill{{ID: 3, Name: "Git", Level: 80}}, grouped["Tools"])

	b, err := json.Marshal(OK(GroupSkills(nil)))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"data":{}}`, string(b))
}

func TestEnvelope(t *testing.T) {
	b, err := json.Marshal(OK(NewProjects(nil)))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"data":[]}`, string(b))

	b, err = json.Marshal(Created("Skill created successfully", 4))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"message":"Skill created successfully","id":4}`, string(b))

	b, err = json.Marshal(Error("Invalid credentials"))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":false,"message":"Invalid credentials"}`, string(b))

	b, err = json.Marshal(CheckAuthResponse{Success: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"authenticated":false}`, string(b))
}

func TestNewProjectDropsBookkeeping(t *testing.T) {
	p := NewProject(model.Project{ID: 1, Title: "Roo", Technologies: []string{"Go"}, Features: []string{}, OrderIndex: 4})
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.NotContains(t, string(b), "order_index")
	require.NotContains(t, string(b), "created_at")
	require.Contains(t, string(b), `"technologies":["Go"]`)
}
