package routes

import (
	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/controllers"
)

// FareRoutes registers the fare endpoints. Status changes address the
// fare as /fare/:id/activate rather than the /activate/:id shape the
// other entities use, and the transition sweep is exposed as a manual
// trigger.
func FareRoutes(rg *gin.RouterGroup, ctl *controllers.FareController) {
	fare := rg.Group("/fare")
	{
		fare.GET("", ctl.List)
		fare.GET("/active", ctl.ListActive)
		fare.GET("/inactive", ctl.ListInactive)
		fare.GET("/enriched", ctl.ListEnriched)
		fare.GET("/enriched/:id", ctl.GetEnriched)
		fare.GET("/:id", ctl.Get)
		fare.POST("", ctl.Create)
		fare.PUT("/:id", ctl.Update)
		fare.PATCH("/:id/activate", ctl.Activate)
		fare.PATCH("/:id/deactivate", ctl.Deactivate)
		fare.DELETE("/:id", ctl.Delete)
		fare.POST("/process-transitions", ctl.ProcessTransitions)
	}
}
