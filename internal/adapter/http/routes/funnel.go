package routes

import (
	"net/http"

	"funilaria_autocolor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathJobs     = "/jobs"
	PathAdmins   = "/admins"
	PathSettings = "/settings"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addFunnelRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, authHandler *handlers.AuthHandler, adminHandler *handlers.AdminHandler, settingsHandler *handlers.SettingsHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.PATCH("/:id/status", jobHandler.SetStatus)
		jobs.POST("/:id/photos", jobHandler.AddPhoto)
		jobs.PATCH("/:id/photos/:photo_id", jobHandler.EditPhoto)
		jobs.DELETE("/:id/photos/:photo_id", jobHandler.DeletePhoto)
		jobs.POST("/:id/notify", jobHandler.Notify)
	}

	admins := rg.Group(PathAdmins)
	{
		admins.GET("", adminHandler.ListAdmins)
		admins.POST("", adminHandler.CreateAdmin)
		admins.DELETE("/:id", adminHandler.DeleteAdmin)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}
}
