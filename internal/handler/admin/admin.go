// File: internal/handler/admin/admin.go
package admin

import (
	"context"
	"net/http"

	"portfolio/internal/dto"
	"portfolio/internal/handler"
	"portfolio/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getDashboardStats         = store.GetDashboardStats
	listRecentContactMessages = store.ListRecentContactMessages
	ensurePersonalInfo        = store.EnsurePersonalInfo
	upsertPersonalInfo        = store.UpsertPersonalInfo
	listProjects              = store.ListProjects
	createProject             = store.CreateProject
	updateProject             = store.UpdateProject
	deleteProject             = store.DeleteProject
	listSkills                = store.ListSkills
	createSkill               = store.CreateSkill
	updateSkill               = store.UpdateSkill
	deleteSkill               = store.DeleteSkill
	listExperience            = store.ListExperience
	createExperience          = store.CreateExperience
	updateExperience          = store.UpdateExperience
	deleteExperience          = store.DeleteExperience
	listEducation             = store.ListEducation
	createEducation           = store.CreateEducation
	updateEducation           = store.UpdateEducation
	deleteEducation           = store.DeleteEducation
	listLanguages             = store.ListLanguages
	createLanguage            = store.CreateLanguage
	updateLanguage            = store.UpdateLanguage
	deleteLanguage            = store.DeleteLanguage
	listContactMessages       = store.ListContactMessages
	markContactMessageRead    = store.MarkContactMessageRead
)

// 以下 helper 處理各資源共用的 Bind、Validate 與錯誤回應，
// 各 handler 只需指定要呼叫的 store 函式。

func list[T any](what string, fetch func(ctx context.Context) ([]T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := fetch(c.Request().Context())
		if err != nil {
			return handler.StoreError(c, what, err)
		}
		return c.JSON(http.StatusOK, dto.OK(items))
	}
}

// create 綁定並驗證 R，成功回傳 201 與新 id
func create[R any](what string, insert func(ctx context.Context, req R) (int, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req R
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error(handler.ValidationMessage(err)))
		}
		id, err := insert(c.Request().Context(), req)
		if err != nil {
			return handler.StoreError(c, what, err)
		}
		return c.JSON(http.StatusCreated, dto.Created(what+" created successfully", id))
	}
}

// update 綁定 patch P，body 未帶的欄位維持原值
func update[P, T any](what string, apply func(ctx context.Context, id int, patch P) (*T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.NotFound(c, what)
		}
		var patch P
		if err := c.Bind(&patch); err != nil {
			return handler.BadRequest(c, err)
		}
		if err := c.Validate(&patch); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error(handler.ValidationMessage(err)))
		}
		out, err := apply(c.Request().Context(), id, patch)
		if err != nil {
			return handler.StoreError(c, what, err)
		}
		return c.JSON(http.StatusOK, dto.Response{Success: true, Message: what + " updated successfully", Data: out})
	}
}

func remove(what string, del func(ctx context.Context, id int) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.NotFound(c, what)
		}
		if err := del(c.Request().Context(), id); err != nil {
			return handler.StoreError(c, what, err)
		}
		return c.JSON(http.StatusOK, dto.Message(what+" deleted successfully"))
	}
}
