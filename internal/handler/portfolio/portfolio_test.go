package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/model"
	"portfolio/internal/store"
	"portfolio/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	getPersonalInfo = store.GetPersonalInfo
	listProjects = store.ListProjects
	getProjectByID = store.GetProjectByID
	listSkills = store.ListSkills
	listExperience = store.ListExperience
	listEducation = store.ListEducation
	listLanguages = store.ListLanguages
	createContactMessage = store.CreateContactMessage
}

func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newCtx(http.MethodGet, target, "")
	c.SetPath("/api/portfolio/projects/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestGetPersonalInfoHandler(t *testing.T) {
	t.Run("defaults without writing", func(t *testing.T) {
		t.Cleanup(restore)
		getPersonalInfo = func(context.Context, database.Querier) (*model.PersonalInfo, error) {
			return nil, fmt.Errorf("GetPersonalInfo: %w", store.ErrNotFound)
		}
		// FakeDB panics on any direct call, so a write would fail the test.
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, GetPersonalInfoHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":"Mahmoud Glala"`)
		require.NotContains(t, rec.Body.String(), `"id"`)
	})

	t.Run("stored row", func(t *testing.T) {
		t.Cleanup(restore)
		getPersonalInfo = func(context.Context, database.Querier) (*model.PersonalInfo, error) {
			return &model.PersonalInfo{ID: 1, Name: "Jane", Title: "Dev"}, nil
		}
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, GetPersonalInfoHandler(nil)(ctx))
		require.JSONEq(t, `{"success":true,"data":{"name":"Jane","title":"Dev","email":"","phone":"","location":"","summary":""}}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		getPersonalInfo = func(context.Context, database.Querier) (*model.PersonalInfo, error) {
			return nil, errors.New("GetPersonalInfo: boom")
		}
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, GetPersonalInfoHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"success":false,"message":"GetPersonalInfo: boom"}`, rec.Body.String())
	})
}

func TestListProjectsHandler(t *testing.T) {
	t.Cleanup(restore)
	var gotFeatured []bool
	listProjects = func(_ context.Context, _ database.Querier, featured bool) ([]model.Project, error) {
		gotFeatured = append(gotFeatured, featured)
		return []model.Project{}, nil
	}

	for _, q := range []string{"", "?featured=true", "?featured=TRUE", "?featured=1"} {
		ctx, rec := newCtx(http.MethodGet, "/api/portfolio/projects"+q, "")
		require.NoError(t, ListProjectsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
	}
	require.Equal(t, []bool{false, true, true, false}, gotFeatured)

	listProjects = func(context.Context, database.Querier, bool) ([]model.Project, error) {
		return []model.Project{{ID: 1, Title: "Roo", Technologies: []string{"Flask"}, Features: []string{}, OrderIndex: 3}}, nil
	}
	ctx, rec := newCtx(http.MethodGet, "/api/portfolio/projects", "")
	require.NoError(t, ListProjectsHandler(nil)(ctx))
	require.Contains(t, rec.Body.String(), `"technologies":["Flask"]`)
	require.NotContains(t, rec.Body.String(), "order_index")
}

func TestGetProjectHandler(t *testing.T) {
	t.Cleanup(restore)
	getProjectByID = func(_ context.Context, _ database.Querier, id int) (*model.Project, error) {
		if id == 1 {
			return &model.Project{ID: 1, Title: "Roo", Technologies: []string{}, Features: []string{}}, nil
		}
		return nil, fmt.Errorf("GetProjectByID: %w", store.ErrNotFound)
	}

	ctx, rec := newParamCtx("/api/portfolio/projects/1", "1")
	require.NoError(t, GetProjectHandler(nil)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"Roo"`)

	ctx, rec = newParamCtx("/api/portfolio/projects/99", "99")
	require.NoError(t, GetProjectHandler(nil)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Project not found"}`, rec.Body.String())

	ctx, rec = newParamCtx("/api/portfolio/projects/abc", "abc")
	require.NoError(t, GetProjectHandler(nil)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSkillsHandler(t *testing.T) {
	t.Cleanup(restore)
	listSkills = func(context.Context, database.Querier) ([]model.Skill, error) {
		return []model.Skill{
			{ID: 2, Name: "Flask", Category: "Backend", Level: 85},
			{ID: 1, Name: "Python", Category: "Backend", Level: 90},
			{ID: 3, Name: "React.js", Category: "Frontend", Level: 85},
		}, nil
	}
	ctx, rec := newCtx(http.MethodGet, "/", "")
	require.NoError(t, ListSkillsHandler(nil)(ctx))
	require.JSONEq(t, `{"success":true,"data":{
		"Backend":[{"id":2,"name":"Flask","level":85,"description":""},{"id":1,"name":"Python","level":90,"description":""}],
		"Frontend":[{"id":3,"name":"React.js","level":85,"description":""}]
	}}`, rec.Body.String())

	listSkills = func(context.Context, database.Querier) ([]model.Skill, error) { return []model.Skill{}, nil }
	ctx, rec = newCtx(http.MethodGet, "/", "")
	require.NoError(t, ListSkillsHandler(nil)(ctx))
	require.JSONEq(t, `{"success":true,"data":{}}`, rec.Body.String())
}

func TestEmptyCollections(t *testing.T) {
	t.Cleanup(restore)
	listExperience = func(context.Context, database.Querier) ([]model.Experience, error) { return []model.Experience{}, nil }
	listEducation = func(context.Context, database.Querier) ([]model.Education, error) { return []model.Education{}, nil }
	listLanguages = func(context.Context, database.Querier) ([]model.Language, error) { return []model.Language{}, nil }

	for _, h := range []echo.HandlerFunc{ListExperienceHandler(nil), ListEducationHandler(nil), ListLanguagesHandler(nil)} {
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
	}
}

func TestListLanguagesHandler(t *testing.T) {
	t.Cleanup(restore)
	listLanguages = func(context.Context, database.Querier) ([]model.Language, error) {
		return []model.Language{{ID: 1, Name: "Arabic", Level: "Native", OrderIndex: 1, CreatedAt: time.Now()}}, nil
	}
	ctx, rec := newCtx(http.MethodGet, "/", "")
	require.NoError(t, ListLanguagesHandler(nil)(ctx))
	require.JSONEq(t, `{"success":true,"data":[{"id":1,"name":"Arabic","level":"Native"}]}`, rec.Body.String())

	listLanguages = func(context.Context, database.Querier) ([]model.Language, error) { return nil, errors.New("down") }
	ctx, rec = newCtx(http.MethodGet, "/", "")
	require.NoError(t, ListLanguagesHandler(nil)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubmitContactHandler(t *testing.T) {
	t.Run("creates one unread message", func(t *testing.T) {
		t.Cleanup(restore)
		calls := 0
		createContactMessage = func(_ context.Context, _ database.Querier, m *model.ContactMessage) (*model.ContactMessage, error) {
			calls++
			require.Equal(t, "Hi", m.Subject)
			require.False(t, m.IsRead)
			m.ID = 12
			return m, nil
		}
		ctx, rec := newCtx(http.MethodPost, "/", `{"name":"Ann","email":"ann@x.io","subject":"Hi","message":"Hello"}`)
		require.NoError(t, SubmitContactHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"success":true,"message":"Message sent successfully","id":12}`, rec.Body.String())
		require.Equal(t, 1, calls)
	})

	t.Run("missing field creates nothing", func(t *testing.T) {
		t.Cleanup(restore)
		calls := 0
		createContactMessage = func(context.Context, database.Querier, *model.ContactMessage) (*model.ContactMessage, error) {
			calls++
			return nil, nil
		}
		for _, body := range []string{
			`{"name":"Ann","subject":"Hi","message":"Hello"}`,
			`{"name":"Ann","email":"","subject":"Hi","message":"Hello"}`,
			`{}`,
			`not json`,
		} {
			ctx, rec := newCtx(http.MethodPost, "/", body)
			require.NoError(t, SubmitContactHandler(nil)(ctx))
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
			require.JSONEq(t, `{"success":false,"message":"All fields are required"}`, rec.Body.String())
		}
		require.Zero(t, calls)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		createContactMessage = func(context.Context, database.Querier, *model.ContactMessage) (*model.ContactMessage, error) {
			return nil, errors.New("CreateContactMessage: full")
		}
		ctx, rec := newCtx(http.MethodPost, "/", `{"name":"A","email":"e","subject":"s","message":"m"}`)
		require.NoError(t, SubmitContactHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
