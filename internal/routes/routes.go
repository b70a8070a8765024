package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/controllers"
	"aqua_distribution/internal/middleware"
)

// Controllers bundles the handler sets wired into the router.
type Controllers struct {
	Program   *controllers.ProgramController
	Route     *controllers.RouteController
	Schedule  *controllers.ScheduleController
	Fare      *controllers.FareController
	Dashboard *controllers.DashboardController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth())
	{
		ProgramRoutes(admin, ctl.Program)
		RouteRoutes(admin, ctl.Route)
		ScheduleRoutes(admin, ctl.Schedule)
		FareRoutes(admin, ctl.Fare)
		DashboardRoutes(admin, ctl.Dashboard)
	}

	return r
}
