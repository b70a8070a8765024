package routes

import (
	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/controllers"
)

func RouteRoutes(rg *gin.RouterGroup, ctl *controllers.RouteController) {
	route := rg.Group("/route")
	{
		route.GET("", ctl.List)
		route.GET("/active", ctl.ListActive)
		route.GET("/inactive", ctl.ListInactive)
		route.GET("/enriched", ctl.ListEnriched)
		route.GET("/enriched/:id", ctl.GetEnriched)
		route.GET("/:id", ctl.Get)
		route.POST("", ctl.Create)
		route.PUT("/:id", ctl.Update)
		route.PATCH("/activate/:id", ctl.Activate)
		route.PATCH("/deactivate/:id", ctl.Deactivate)
		route.DELETE("/:id", ctl.Delete)
	}
}
