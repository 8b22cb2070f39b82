// File: internal/router/router.go
package router

import (
	"io/fs"

	"portfolio/internal/cache"
	"portfolio/internal/database"
	"portfolio/internal/handler"
	"portfolio/internal/handler/admin"
	"portfolio/internal/handler/auth"
	"portfolio/internal/handler/portfolio"
	"portfolio/internal/handler/static"
	"portfolio/internal/middleware"
	"portfolio/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Authenticator is everything the routes need from service.Authenticator.
type Authenticator interface {
	auth.Authenticator
	middleware.Identifier
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, sessions cache.Cache, authn Authenticator, cookie middleware.SessionCookie, site fs.FS) {
	if e.Validator == nil {
		e.Validator = validation.New()
	}
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, sessions))

	// 公開內容
	pub := api.Group("/portfolio")
	pub.GET("/personal-info", portfolio.GetPersonalInfoHandler(db))
	pub.GET("/projects", portfolio.ListProjectsHandler(db))
	pub.GET("/projects/:id", portfolio.GetProjectHandler(db))
	pub.GET("/skills", portfolio.ListSkillsHandler(db))
	pub.GET("/experience", portfolio.ListExperienceHandler(db))
	pub.GET("/education", portfolio.ListEducationHandler(db))
	pub.GET("/languages", portfolio.ListLanguagesHandler(db))
	pub.POST("/contact", portfolio.SubmitContactHandler(db))

	// 管理員登入狀態
	apiAdmin := api.Group("/admin", middleware.Authenticate(authn, cookie))
	apiAdmin.POST("/login", auth.LoginHandler(authn, cookie))
	apiAdmin.GET("/check-auth", auth.CheckAuthHandler())

	// 需登入的管理功能
	protected := apiAdmin.Group("", middleware.RequireAuth)
	protected.POST("/logout", auth.LogoutHandler(authn, cookie))
	protected.GET("/dashboard", admin.DashboardHandler(db))
	protected.GET("/personal-info", admin.GetPersonalInfoHandler(db))
	protected.PUT("/personal-info", admin.UpdatePersonalInfoHandler(db))

	protected.GET("/projects", admin.ListProjectsHandler(db))
	protected.POST("/projects", admin.CreateProjectHandler(db))
	protected.PUT("/projects/:id", admin.UpdateProjectHandler(db))
	protected.DELETE("/projects/:id", admin.DeleteProjectHandler(db))

	protected.GET("/skills", admin.ListSkillsHandler(db))
	protected.POST("/skills", admin.CreateSkillHandler(db))
	protected.PUT("/skills/:id", admin.UpdateSkillHandler(db))
	protected.DELETE("/skills/:id", admin.DeleteSkillHandler(db))

	protected.GET("/experience", admin.ListExperienceHandler(db))
	protected.POST("/experience", admin.CreateExperienceHandler(db))
	protected.PUT("/experience/:id", admin.UpdateExperienceHandler(db))
	protected.DELETE("/experience/:id", admin.DeleteExperienceHandler(db))

	protected.GET("/education", admin.ListEducationHandler(db))
	protected.POST("/education", admin.CreateEducationHandler(db))
	protected.PUT("/education/:id", admin.UpdateEducationHandler(db))
	protected.DELETE("/education/:id", admin.DeleteEducationHandler(db))

	protected.GET("/languages", admin.ListLanguagesHandler(db))
	protected.POST("/languages", admin.CreateLanguageHandler(db))
	protected.PUT("/languages/:id", admin.UpdateLanguageHandler(db))
	protected.DELETE("/languages/:id", admin.DeleteLanguageHandler(db))

	protected.GET("/messages", admin.ListMessagesHandler(db))
	protected.PUT("/messages/:id/read", admin.MarkMessageReadHandler(db))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 前端 SPA；/api/admin 底下未註冊的路徑同樣交給前端，不經過登入檢查
	spa := static.Handler(site)
	e.GET("/*", spa)
	e.RouteNotFound("/api/admin", spa)
	e.RouteNotFound("/api/admin/*", spa)
}
