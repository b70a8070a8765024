package routes

import (
	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/controllers"
)

func ProgramRoutes(rg *gin.RouterGroup, ctl *controllers.ProgramController) {
	program := rg.Group("/program")
	{
		program.GET("", ctl.List)
		program.GET("/active", ctl.ListActive)
		program.GET("/inactive", ctl.ListInactive)
		program.GET("/enriched", ctl.ListEnriched)
		program.GET("/enriched/:id", ctl.GetEnriched)
		program.GET("/:id", ctl.Get)
		program.POST("", ctl.Create)
		program.PUT("/:id", ctl.Update)
		program.PATCH("/activate/:id", ctl.Activate)
		program.PATCH("/deactivate/:id", ctl.Deactivate)
		program.DELETE("/:id", ctl.Delete)
	}
}
