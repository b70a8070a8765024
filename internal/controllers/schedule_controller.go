package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aqua_distribution/internal/models"
	"aqua_distribution/internal/service"
)

// ScheduleController exposes the distribution schedule endpoints.
type ScheduleController struct {
	svc *service.ScheduleService
}

func NewScheduleController(svc *service.ScheduleService) *ScheduleController {
	return &ScheduleController{svc: svc}
}

// List returns all schedules; ?organizationId= filters by organization.
func (ctl *ScheduleController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if orgID := c.Query("organizationId"); orgID != "" {
		schedules, err := ctl.svc.ListByOrganization(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"schedules": schedules})
		return
	}
	schedules, err := ctl.svc.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (ctl *ScheduleController) ListActive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusActive)
}

func (ctl *ScheduleController) ListInactive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusInactive)
}

func (ctl *ScheduleController) listByStatus(c *gin.Context, status string) {
	schedules, err := ctl.svc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (ctl *ScheduleController) ListEnriched(c *gin.Context) {
	schedules, err := ctl.svc.ListAllEnriched(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (ctl *ScheduleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	schedule, err := ctl.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (ctl *ScheduleController) GetEnriched(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	schedule, err := ctl.svc.GetEnrichedByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (ctl *ScheduleController) Create(c *gin.Context) {
	var input service.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateSchedule: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	schedule, err := ctl.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

func (ctl *ScheduleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	schedule, err := ctl.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (ctl *ScheduleController) Activate(c *gin.Context) {
	ctl.changeStatus(c, ctl.svc.Activate)
}

func (ctl *ScheduleController) Deactivate(c *gin.Context) {
	ctl.changeStatus(c, ctl.svc.Deactivate)
}

func (ctl *ScheduleController) changeStatus(c *gin.Context, change func(ctx context.Context, id uint) (*models.Schedule, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	schedule, err := change(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (ctl *ScheduleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
