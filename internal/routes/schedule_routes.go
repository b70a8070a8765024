package routes

import (
	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/controllers"
)

func ScheduleRoutes(rg *gin.RouterGroup, ctl *controllers.ScheduleController) {
	schedule := rg.Group("/schedule")
	{
		schedule.GET("", ctl.List)
		schedule.GET("/active", ctl.ListActive)
		schedule.GET("/inactive", ctl.ListInactive)
		schedule.GET("/enriched", ctl.ListEnriched)
		schedule.GET("/enriched/:id", ctl.GetEnriched)
		schedule.GET("/:id", ctl.Get)
		schedule.POST("", ctl.Create)
		schedule.PUT("/:id", ctl.Update)
		schedule.PATCH("/activate/:id", ctl.Activate)
		schedule.PATCH("/deactivate/:id", ctl.Deactivate)
		schedule.DELETE("/:id", ctl.Delete)
	}
}
