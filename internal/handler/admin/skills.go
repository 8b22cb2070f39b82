// File: internal/handler/admin/skills.go
package admin

import (
	"context"

	"portfolio/internal/api"
	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// ListSkillsHandler 列出技能
// @Summary     List skills
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.Skill}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/skills [get]
func ListSkillsHandler(db database.DB) echo.HandlerFunc {
	return list("Skills", func(ctx context.Context) ([]model.Skill, error) {
		return listSkills(ctx, db)
	})
}

// CreateSkillHandler 新增技能（未帶 level 時預設 50）
// @Summary     Create a skill
// @Description name and category are required; level defaults to 50 and must be 0..100.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateSkillRequest true "skill"
// @Success     201  {object} dto.Response
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/skills [post]
func CreateSkillHandler(db database.DB) echo.HandlerFunc {
	return create("Skill", func(ctx context.Context, req api.CreateSkillRequest) (int, error) {
		level := model.DefaultSkillLevel
		if req.Level != nil {
			level = *req.Level
		}
		s, err := createSkill(ctx, db, &model.Skill{
			Name:        req.Name,
			Category:    req.Category,
			Level:       level,
			Description: req.Description,
			OrderIndex:  req.OrderIndex,
		})
		if err != nil {
			return 0, err
		}
		return s.ID, nil
	})
}

// UpdateSkillHandler 更新指定技能
// @Summary     Update a skill
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path     int              true "skill ID"
// @Param       body body     model.SkillPatch true "fields to change"
// @Success     200  {object} dto.Response{data=model.Skill}
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     404  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/skills/{id} [put]
func UpdateSkillHandler(db database.DB) echo.HandlerFunc {
	return update("Skill", func(ctx context.Context, id int, patch model.SkillPatch) (*model.Skill, error) {
		return updateSkill(ctx, db, id, patch)
	})
}

// DeleteSkillHandler 刪除指定技能
// @Summary     Delete a skill
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "skill ID"
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/skills/{id} [delete]
func DeleteSkillHandler(db database.DB) echo.HandlerFunc {
	return remove("Skill", func(ctx context.Context, id int) error {
		return deleteSkill(ctx, db, id)
	})
}
