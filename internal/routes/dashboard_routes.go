package routes

import (
	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/controllers"
)

func DashboardRoutes(rg *gin.RouterGroup, ctl *controllers.DashboardController) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", ctl.Stats)
	}
}
