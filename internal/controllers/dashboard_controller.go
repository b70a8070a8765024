package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqua_distribution/internal/models"
	"aqua_distribution/internal/service"
)

// DashboardController aggregates entity counts for the admin overview.
type DashboardController struct {
	programs  *service.ProgramService
	routes    *service.RouteService
	schedules *service.ScheduleService
	fares     *service.FareService
}

func NewDashboardController(p *service.ProgramService, r *service.RouteService, s *service.ScheduleService, f *service.FareService) *DashboardController {
	return &DashboardController{programs: p, routes: r, schedules: s, fares: f}
}

type entityStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// Stats returns per-entity totals with active/inactive breakdowns.
func (ctl *DashboardController) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	programs, err := ctl.programs.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	routes, err := ctl.routes.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	schedules, err := ctl.schedules.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	fares, err := ctl.fares.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	programStats := entityStats{Total: len(programs)}
	for _, p := range programs {
		switch p.Status {
		case models.StatusActive:
			programStats.Active++
		case models.StatusInactive:
			programStats.Inactive++
		}
	}
	routeStats := entityStats{Total: len(routes)}
	for _, r := range routes {
		switch r.Status {
		case models.StatusActive:
			routeStats.Active++
		case models.StatusInactive:
			routeStats.Inactive++
		}
	}
	scheduleStats := entityStats{Total: len(schedules)}
	for _, s := range schedules {
		switch s.Status {
		case models.StatusActive:
			scheduleStats.Active++
		case models.StatusInactive:
			scheduleStats.Inactive++
		}
	}
	fareStats := entityStats{Total: len(fares)}
	for _, f := range fares {
		switch f.Status {
		case models.StatusActive:
			fareStats.Active++
		case models.StatusInactive:
			fareStats.Inactive++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"programs":  programStats,
		"routes":    routeStats,
		"schedules": scheduleStats,
		"fares":     fareStats,
	})
}
