package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aqua_distribution/internal/models"
	"aqua_distribution/internal/scheduler"
	"aqua_distribution/internal/service"
)

// FareController exposes the fare endpoints, including the manual
// transition trigger backed by the background scheduler.
type FareController struct {
	svc   *service.FareService
	sched *scheduler.FareTransitionScheduler
}

func NewFareController(svc *service.FareService, sched *scheduler.FareTransitionScheduler) *FareController {
	return &FareController{svc: svc, sched: sched}
}

// List returns all fares; ?organizationId= filters by organization.
func (ctl *FareController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if orgID := c.Query("organizationId"); orgID != "" {
		fares, err := ctl.svc.ListByOrganization(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"fares": fares})
		return
	}
	fares, err := ctl.svc.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fares": fares})
}

func (ctl *FareController) ListActive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusActive)
}

func (ctl *FareController) ListInactive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusInactive)
}

func (ctl *FareController) listByStatus(c *gin.Context, status string) {
	fares, err := ctl.svc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fares": fares})
}

func (ctl *FareController) ListEnriched(c *gin.Context) {
	fares, err := ctl.svc.ListAllEnriched(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fares": fares})
}

func (ctl *FareController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fare, err := ctl.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}

func (ctl *FareController) GetEnriched(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fare, err := ctl.svc.GetEnrichedByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}

func (ctl *FareController) Create(c *gin.Context) {
	var input service.FareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateFare: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	fare, err := ctl.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fare": fare})
}

func (ctl *FareController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.FareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	fare, err := ctl.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}

// Activate flips a fare to ACTIVE. Unlike the other entities this is
// not idempotent: activating an already active fare is a conflict.
func (ctl *FareController) Activate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fare, err := ctl.svc.Activate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}

func (ctl *FareController) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fare, err := ctl.svc.Deactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}

func (ctl *FareController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fare deleted"})
}

// ProcessTransitions runs one fare transition sweep on demand. If a
// sweep is already in flight the request is accepted but skipped.
func (ctl *FareController) ProcessTransitions(c *gin.Context) {
	ran := ctl.sched.RunNow(c.Request.Context())
	if !ran {
		c.JSON(http.StatusAccepted, gin.H{"message": "Transition sweep already running"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fare transitions processed"})
}
