// File: internal/handler/portfolio/portfolio.go
package portfolio

import (
	"errors"
	"net/http"
	"strings"

	"portfolio/internal/api"
	"portfolio/internal/database"
	"portfolio/internal/dto"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getPersonalInfo      = store.GetPersonalInfo
	listProjects         = store.ListProjects
	getProjectByID       = store.GetProjectByID
	listSkills           = store.ListSkills
	listExperience       = store.ListExperience
	listEducation        = store.ListEducation
	listLanguages        = store.ListLanguages
	createContactMessage = store.CreateContactMessage
)

// GetPersonalInfoHandler 取得個人資料，不存在時回傳預設值
// @Summary     Personal info
// @Description Falls back to built-in defaults while nothing is stored; never writes.
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} dto.Response{data=dto.PersonalInfo}
// @Failure     500 {object} dto.ErrorResponse
// @Router      /portfolio/personal-info [get]
func GetPersonalInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		info, err := getPersonalInfo(c.Request().Context(), db)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusOK, dto.OK(dto.NewPersonalInfo(model.DefaultPersonalInfo())))
		}
		if err != nil {
			return handler.StoreError(c, "Personal info", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.NewPersonalInfo(*info)))
	}
}

// ListProjectsHandler 列出專案（featured=true 只列精選）
// @Summary     List projects
// @Tags        portfolio
// @Produce     json
// @Param       featured query    bool false "only featured projects"
// @Success     200      {object} dto.Response{data=[]dto.Project}
// @Failure     500      {object} dto.ErrorResponse
// @Router      /portfolio/projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		featured := strings.EqualFold(c.QueryParam("featured"), "true")
		projects, err := listProjects(c.Request().Context(), db, featured)
		if err != nil {
			return handler.StoreError(c, "Projects", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.NewProjects(projects)))
	}
}

// GetProjectHandler 取得單一專案
// @Summary     Get a project
// @Tags        portfolio
// @Produce     json
// @Param       id  path     int true "project ID"
// @Success     200 {object} dto.Response{data=dto.Project}
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /portfolio/projects/{id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.NotFound(c, "Project")
		}
		p, err := getProjectByID(c.Request().Context(), db, id)
		if err != nil {
			return handler.StoreError(c, "Project", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.NewProject(*p)))
	}
}

// ListSkillsHandler 依分類列出技能
// @Summary     Skills grouped by category
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} dto.Response{data=map[string][]dto.Skill}
// @Failure     500 {object} dto.ErrorResponse
// @Router      /portfolio/skills [get]
func ListSkillsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		skills, err := listSkills(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, "Skills", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.GroupSkills(skills)))
	}
}

// ListExperienceHandler 列出工作經歷
// @Summary     Work experience
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} dto.Response{data=[]dto.Experience}
// @Failure     500 {object} dto.ErrorResponse
// @Router      /portfolio/experience [get]
func ListExperienceHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listExperience(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, "Experience", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.NewExperience(items)))
	}
}

// ListEducationHandler 列出學歷
// @Summary     Education
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} dto.Response{data=[]dto.Education}
// @Failure     500 {object} dto.ErrorResponse
// @Router      /portfolio/education [get]
func ListEducationHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listEducation(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, "Education", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.NewEducation(items)))
	}
}

// ListLanguagesHandler 列出語言能力
// @Summary     Spoken languages
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} dto.Response{data=[]dto.Language}
// @Failure     500 {object} dto.ErrorResponse
// @Router      /portfolio/languages [get]
func ListLanguagesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listLanguages(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, "Languages", err)
		}
		return c.JSON(http.StatusOK, dto.OK(dto.NewLanguages(items)))
	}
}

// SubmitContactHandler 送出聯絡表單
// @Summary     Send a contact message
// @Description name, email, subject and message are all required.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       body body     api.ContactRequest true "message"
// @Success     201  {object} dto.Response
// @Failure     400  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Router      /portfolio/contact [post]
func SubmitContactHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("All fields are required"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("All fields are required"))
		}

		m, err := createContactMessage(c.Request().Context(), db, &model.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			return handler.StoreError(c, "Message", err)
		}
		return c.JSON(http.StatusCreated, dto.Created("Message sent successfully", m.ID))
	}
}
