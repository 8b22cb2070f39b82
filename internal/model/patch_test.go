package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectPatchOnlyTouchesPresentFields(t *testing.T) {
	p := Project{
		ID:           3,
		Title:        "Roo Florals",
		Description:  "shop",
		Technologies: []string{"Go", "Rust"},
		Features:     []string{"Fast"},
		Status:       "In Development",
		IsFeatured:   true,
		OrderIndex:   2,
	}
	before := p

	ProjectPatch{Status: strPtr("Live")}.Apply(&p)

	require.Equal(t, "Live", p.Status)
	before.Status = "Live"
	require.Equal(t, before, p)
}

func TestProjectPatchReplacesListsWholesale(t *testing.T) {
	p := Project{Technologies: []string{"Go", "Rust"}, Features: []string{"Fast"}}
	techs := []string{"Zig"}
	var nilList []string

	ProjectPatch{Technologies: &techs, Features: &nilList}.Apply(&p)

	require.Equal(t, []string{"Zig"}, p.Technologies)
	require.Equal(t, []string{}, p.Features)

	techs[0] = "mutated"
	require.Equal(t, []string{"Zig"}, p.Technologies)
}

func TestSkillPatch(t *testing.T) {
	s := Skill{Name: "Go", Category: "Backend", Level: 50}
	level, zero := 90, 0
	SkillPatch{Level: &level}.Apply(&s)
	require.Equal(t, Skill{Name: "Go", Category: "Backend", Level: 90}, s)

	SkillPatch{OrderIndex: &zero, Category: strPtr("Tools")}.Apply(&s)
	require.Equal(t, "Tools", s.Category)
	require.Equal(t, 0, s.OrderIndex)
}

func TestPersonalInfoPatch(t *testing.T) {
	info := DefaultPersonalInfo()
	PersonalInfoPatch{Name: strPtr("Jane"), Phone: strPtr("")}.Apply(&info)
	require.Equal(t, "Jane", info.Name)
	require.Equal(t, "", info.Phone)
	require.Equal(t, DefaultPersonalInfo().Title, info.Title)
}

func TestExperienceEducationLanguagePatch(t *testing.T) {
	e := Experience{Title: "Dev", Responsibilities: []string{"a"}}
	resp := []string{"b", "b"}
	ExperiencePatch{Responsibilities: &resp}.Apply(&e)
	require.Equal(t, "Dev", e.Title)
	require.Equal(t, []string{"b", "b"}, e.Responsibilities)

	ed := Education{Degree: "BSc", Field: "CS"}
	EducationPatch{Field: strPtr("SE")}.Apply(&ed)
	require.Equal(t, Education{Degree: "BSc", Field: "SE"}, ed)

	l := Language{Name: "English", Level: "Fluent"}
	LanguagePatch{Level: strPtr("Native")}.Apply(&l)
	require.Equal(t, Language{Name: "English", Level: "Native"}, l)
}

func TestAdminSummary(t *testing.T) {
	u := AdminUser{ID: 1, Username: "admin", Email: "a@b.c", PasswordHash: "h", IsActive: true}
	require.Equal(t, AdminSummary{ID: 1, Username: "admin", Email: "a@b.c"}, u.Summary())
}
