package validation

import (
	"testing"

	"portfolio/internal/api"
	"portfolio/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	cv := New()
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestContactRequestNeedsAllFields(t *testing.T) {
	cv := New()
	full := api.ContactRequest{Name: "a", Email: "a@b.c", Subject: "s", Message: "m"}
	require.NoError(t, cv.Validate(&full))

	for _, blank := range []func(*api.ContactRequest){
		func(r *api.ContactRequest) { r.Name = "" },
		func(r *api.ContactRequest) { r.Email = "" },
		func(r *api.ContactRequest) { r.Subject = "" },
		func(r *api.ContactRequest) { r.Message = "" },
	} {
		r := full
		blank(&r)
		require.Error(t, cv.Validate(&r))
	}
}

func TestSkillLevelBounds(t *testing.T) {
	cv := New()
	lvl := func(n int) *int { return &n }

	require.NoError(t, cv.Validate(&api.CreateSkillRequest{Name: "Go", Category: "Backend"}))
	require.NoError(t, cv.Validate(&api.CreateSkillRequest{Name: "Go", Category: "Backend", Level: lvl(0)}))
	require.NoError(t, cv.Validate(&api.CreateSkillRequest{Name: "Go", Category: "Backend", Level: lvl(100)}))
	require.Error(t, cv.Validate(&api.CreateSkillRequest{Name: "Go", Category: "Backend", Level: lvl(101)}))
	require.Error(t, cv.Validate(&api.CreateSkillRequest{Name: "Go", Category: "Backend", Level: lvl(-1)}))

	require.Error(t, cv.Validate(&model.SkillPatch{Level: lvl(150)}))
	require.NoError(t, cv.Validate(&model.SkillPatch{}))
}

func TestFieldNamesFollowJSONTags(t *testing.T) {
	err := New().Validate(&api.CreateProjectRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "'title'")
	require.Contains(t, err.Error(), "'description'")
}
