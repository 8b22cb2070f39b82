// File: internal/handler/admin/personal_info.go
package admin

import (
	"net/http"

	"portfolio/internal/database"
	"portfolio/internal/dto"
	"portfolio/internal/handler"
	"portfolio/internal/model"

	"github.com/labstack/echo/v4"
)

// GetPersonalInfoHandler 取得個人資料，不存在時以預設值建立
// @Summary     Get personal info
// @Description Creates the record from defaults on first access.
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.Response{data=model.PersonalInfo}
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/personal-info [get]
func GetPersonalInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		info, err := ensurePersonalInfo(c.Request().Context(), db, model.DefaultPersonalInfo())
		if err != nil {
			return handler.StoreError(c, "Personal info", err)
		}
		return c.JSON(http.StatusOK, dto.OK(info))
	}
}

// UpdatePersonalInfoHandler 更新個人資料
// @Summary     Update personal info
// @Description Only fields present in the body change.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     model.PersonalInfoPatch true "fields to change"
// @Success     200  {object} dto.Response{data=model.PersonalInfo}
// @Failure     400  {object} dto.ErrorResponse
// @Failure     401  {object} dto.ErrorResponse
// @Failure     500  {object} dto.ErrorResponse
// @Security    SessionCookie
// @Router      /admin/personal-info [put]
func UpdatePersonalInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var patch model.PersonalInfoPatch
		if err := c.Bind(&patch); err != nil {
			return handler.BadRequest(c, err)
		}
		info, err := upsertPersonalInfo(c.Request().Context(), db, model.DefaultPersonalInfo(), patch)
		if err != nil {
			return handler.StoreError(c, "Personal info", err)
		}
		return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Personal info updated successfully", Data: info})
	}
}
