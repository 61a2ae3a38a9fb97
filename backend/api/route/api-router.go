package route

import (
	"mediabox/backend/api/handler"
	"mediabox/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	// Public pages. The /trangquantri paths are kept as aliases for the
	// original deployment's bookmarks.
	route.GET("/", handler.IndexPage)
	route.GET("/login", handler.LoginPage)
	route.GET("/trangquantri/login", handler.LoginPage)
	route.POST("/login", middleware.CriticalRateLimit(), handler.Login)
	route.POST("/trangquantri/login", middleware.CriticalRateLimit(), handler.Login)
	route.GET("/logout", handler.Logout)
	route.GET("/admin/logout", handler.Logout)

	// Ungated on purpose: the front-end probes session state here.
	route.GET("/admin/check-auth", handler.CheckAuth)

	// Session-gated admin surface
	route.GET("/admin", middleware.SessionAuth(), handler.AdminPage)
	route.GET("/trangquantri", middleware.SessionAuth(), handler.AdminPage)
	route.POST("/admin/change-password", middleware.SessionAuth(), handler.ChangePassword)

	adminAPI := route.Group("/admin/api")
	adminAPI.Use(middleware.SessionAuth())
	{
		adminAPI.GET("/files", handler.GetFiles)
		adminAPI.DELETE("/files/:filename", handler.DeleteFile)
		adminAPI.GET("/stats", handler.GetStats)
		adminAPI.POST("/settings", handler.UpdateSettings)
		adminAPI.POST("/announcement", handler.UpdateAnnouncement)
	}

	// Public API
	route.GET("/api/announcement", handler.GetAnnouncement)
	route.POST("/upload", handler.Upload)
	route.POST("/convert", handler.Convert)
	route.GET("/api/convert", handler.ConvertSingle)
}
