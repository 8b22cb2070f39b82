// File: internal/handler/admin/education.go
package admin

import (
	"context"

	"portfolio/internal/api"
	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// ListEducationHandler 列出學歷
// @Summary     List education
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.Education}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/education [get]
func ListEducationHandler(db database.DB) echo.HandlerFunc {
	return list("Education", func(ctx context.Context) ([]model.Education, error) {
		return listEducation(ctx, db)
	})
}

// CreateEducationHandler 新增學歷
// @Summary     Create an education entry
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateEducationRequest true "education"
// @Success     201  {object} dto.Response
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/education [post]
func CreateEducationHandler(db database.DB) echo.HandlerFunc {
	return create("Education", func(ctx context.Context, req api.CreateEducationRequest) (int, error) {
		e, err := createEducation(ctx, db, &model.Education{
			Degree:      req.Degree,
			Field:       req.Field,
			Institution: req.Institution,
			Period:      req.Period,
			Description: req.Description,
			OrderIndex:  req.OrderIndex,
		})
		if err != nil {
			return 0, err
		}
		return e.ID, nil
	})
}

// UpdateEducationHandler 更新指定學歷
// @Summary     Update an education entry
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path     int                  true "education ID"
// @Param       body body     model.EducationPatch true "fields to change"
// @Success     200  {object} dto.Response{data=model.Education}
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     404  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/education/{id} [put]
func UpdateEducationHandler(db database.DB) echo.HandlerFunc {
	return update("Education", func(ctx context.Context, id int, patch model.EducationPatch) (*model.Education, error) {
		return updateEducation(ctx, db, id, patch)
	})
}

// DeleteEducationHandler 刪除指定學歷
// @Summary     Delete an education entry
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "education ID"
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/education/{id} [delete]
func DeleteEducationHandler(db database.DB) echo.HandlerFunc {
	return remove("Education", func(ctx context.Context, id int) error {
		return deleteEducation(ctx, db, id)
	})
}
