// File: internal/handler/admin/projects.go
package admin

import (
	"context"

	"portfolio/internal/api"
	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// ListProjectsHandler 列出專案
// @Summary     List projects
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.Project}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return list("Projects", func(ctx context.Context) ([]model.Project, error) {
		return listProjects(ctx, db, false)
	})
}

// CreateProjectHandler 新增專案
// @Summary     Create a project
// @Description title and description are required; status defaults to Live.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProjectRequest true "project"
// @Success     201  {object} dto.Response
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return create("Project", func(ctx context.Context, req api.CreateProjectRequest) (int, error) {
		p, err := createProject(ctx, db, &model.Project{
			Title:           req.Title,
			Subtitle:        req.Subtitle,
			Description:     req.Description,
			LongDescription: req.LongDescription,
			Technologies:    req.Technologies,
			Features:        req.Features,
			ImageURL:        req.ImageURL,
			LiveURL:         req.LiveURL,
			GithubURL:       req.GithubURL,
			Status:          req.Status,
			IsFeatured:      req.IsFeatured,
			OrderIndex:      req.OrderIndex,
		})
		if err != nil {
			return 0, err
		}
		return p.ID, nil
	})
}

// UpdateProjectHandler 更新指定專案
// @Summary     Update a project
// @Description Only fields present in the body change; lists are replaced whole.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path     int                true "project ID"
// @Param       body body     model.ProjectPatch true "fields to change"
// @Success     200  {object} dto.Response{data=model.Project}
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     404  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/projects/{id} [put]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return update("Project", func(ctx context.Context, id int, patch model.ProjectPatch) (*model.Project, error) {
		return updateProject(ctx, db, id, patch)
	})
}

// DeleteProjectHandler 刪除指定專案
// @Summary     Delete a project
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "project ID"
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/projects/{id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return remove("Project", func(ctx context.Context, id int) error {
		return deleteProject(ctx, db, id)
	})
}
