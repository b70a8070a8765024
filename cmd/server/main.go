package main

import (
	"log"
	"net/http"

	"aqua_distribution/internal/clients"
	"aqua_distribution/internal/config"
	"aqua_distribution/internal/controllers"
	"aqua_distribution/internal/lifecycle"
	"aqua_distribution/internal/logger"
	"aqua_distribution/internal/middleware"
	"aqua_distribution/internal/routes"
	"aqua_distribution/internal/scheduler"
	"aqua_distribution/internal/service"
	"aqua_distribution/internal/store/gormstore"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	settings := config.LoadSettings()
	db := config.GetDB()

	programStore := gormstore.NewProgramStore(db)
	routeStore := gormstore.NewRouteStore(db)
	scheduleStore := gormstore.NewScheduleStore(db)
	fareStore := gormstore.NewFareStore(db)

	// Enrichment client; a nil client degrades responses to bare entities.
	var enricher *clients.Client
	if settings.UserServiceURL != "" {
		enricher = clients.New(settings.UserServiceURL)
	}

	clock := lifecycle.SystemClock()
	programSvc := service.NewProgramService(programStore, enricher)
	routeSvc := service.NewRouteService(routeStore, enricher)
	scheduleSvc := service.NewScheduleService(scheduleStore, enricher)
	fareSvc := service.NewFareService(fareStore, clock, service.FareSettings{
		TransitionDate:      settings.TransitionDate,
		MonthlyAmountBefore: settings.MonthlyFareBefore,
		MonthlyAmountAfter:  settings.MonthlyFareAfter,
	}, enricher)

	sched := scheduler.New(fareStore, clock, settings.TransitionDate, settings.FareSweepInterval)
	sched.Start()
	defer sched.Stop()

	// Setup Gin router
	r := routes.SetupRouter(routes.Controllers{
		Program:   controllers.NewProgramController(programSvc),
		Route:     controllers.NewRouteController(routeSvc),
		Schedule:  controllers.NewScheduleController(scheduleSvc),
		Fare:      controllers.NewFareController(fareSvc, sched),
		Dashboard: controllers.NewDashboardController(programSvc, routeSvc, scheduleSvc, fareSvc),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + settings.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+settings.Port, handler))
}
