// File: internal/handler/admin/languages.go
package admin

import (
	"context"

	"portfolio/internal/api"
	"portfolio/internal/database"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// ListLanguagesHandler 列出語言能力
// @Summary     List languages
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.Language}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/languages [get]
func ListLanguagesHandler(db database.DB) echo.HandlerFunc {
	return list("Languages", func(ctx context.Context) ([]model.Language, error) {
		return listLanguages(ctx, db)
	})
}

// CreateLanguageHandler 新增語言能力
// @Summary     Create a language
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateLanguageRequest true "language"
// @Success     201  {object} dto.Response
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/languages [post]
func CreateLanguageHandler(db database.DB) echo.HandlerFunc {
	return create("Language", func(ctx context.Context, req api.CreateLanguageRequest) (int, error) {
		l, err := createLanguage(ctx, db, &model.Language{
			Name:       req.Name,
			Level:      req.Level,
			OrderIndex: req.OrderIndex,
		})
		if err != nil {
			return 0, err
		}
		return l.ID, nil
	})
}

// UpdateLanguageHandler 更新指定語言能力
// @Summary     Update a language
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id   path     int                 true "language ID"
// @Param       body body     model.LanguagePatch true "fields to change"
// @Success     200  {object} dto.Response{data=model.Language}
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     404  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/languages/{id} [put]
func UpdateLanguageHandler(db database.DB) echo.HandlerFunc {
	return update("Language", func(ctx context.Context, id int, patch model.LanguagePatch) (*model.Language, error) {
		return updateLanguage(ctx, db, id, patch)
	})
}

// DeleteLanguageHandler 刪除指定語言能力
// @Summary     Delete a language
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "language ID"
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/languages/{id} [delete]
func DeleteLanguageHandler(db database.DB) echo.HandlerFunc {
	return remove("Language", func(ctx context.Context, id int) error {
		return deleteLanguage(ctx, db, id)
	})
}
