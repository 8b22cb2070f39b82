// File: internal/handler/admin/experience.go
package admin

import (
	"context"

	"portfolio/internal/api"
	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// ListExperienceHandler 列出工作經歷
// @Summary     List experience
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.Experience}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/experience [get]
func ListExperienceHandler(db database.DB) echo.HandlerFunc {
	return list("Experience", func(ctx context.Context) ([]model.Experience, error) {
		return listExperience(ctx, db)
	})
}

// CreateExperienceHandler 新增工作經歷
// @Summary     Create an experience entry
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateExperienceRequest true "experience"
// @Success     201  {object} dto.Response
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/experience [post]
func CreateExperienceHandler(db database.DB) echo.HandlerFunc {
	return create("Experience", func(ctx context.Context, req api.CreateExperienceRequest) (int, error) {
		e, err := createExperience(ctx, db, &model.Experience{
			Title:            req.Title,
			Company:          req.Company,
			Period:           req.Period,
			Location:         req.Location,
			Description:      req.Description,
			Responsibilities: req.Responsibilities,
			Projects:         req.Projects,
			OrderIndex:       req.OrderIndex,
		})
		if err != nil {
			return 0, err
		}
		return e.ID, nil
	})
}

// UpdateExperienceHandler 更新指定工作經歷
// @Summary     Update an experience entry
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "experience ID"
// @Param       body body     model.ExperiencePatch true "fields to change"
// @Success     200  {object} dto.Response{data=model.Experience}
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     404  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/experience/{id} [put]
func UpdateExperienceHandler(db database.DB) echo.HandlerFunc {
	return update("Experience", func(ctx context.Context, id int, patch model.ExperiencePatch) (*model.Experience, error) {
		return updateExperience(ctx, db, id, patch)
	})
}

// DeleteExperienceHandler 刪除指定工作經歷
// @Summary     Delete an experience entry
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "experience ID"
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/experience/{id} [delete]
func DeleteExperienceHandler(db database.DB) echo.HandlerFunc {
	return remove("Experience", func(ctx context.Context, id int) error {
		return deleteExperience(ctx, db, id)
	})
}
