package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aqua_distribution/internal/models"
	"aqua_distribution/internal/service"
)

// RouteController exposes the distribution route endpoints.
type RouteController struct {
	svc *service.RouteService
}

func NewRouteController(svc *service.RouteService) *RouteController {
	return &RouteController{svc: svc}
}

// List returns all routes; ?organizationId= filters by organization.
func (ctl *RouteController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if orgID := c.Query("organizationId"); orgID != "" {
		routes, err := ctl.svc.ListByOrganization(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"routes": routes})
		return
	}
	routes, err := ctl.svc.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (ctl *RouteController) ListActive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusActive)
}

func (ctl *RouteController) ListInactive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusInactive)
}

func (ctl *RouteController) listByStatus(c *gin.Context, status string) {
	routes, err := ctl.svc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (ctl *RouteController) ListEnriched(c *gin.Context) {
	routes, err := ctl.svc.ListAllEnriched(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (ctl *RouteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := ctl.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (ctl *RouteController) GetEnriched(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := ctl.svc.GetEnrichedByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (ctl *RouteController) Create(c *gin.Context) {
	var input service.RouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	route, err := ctl.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route})
}

func (ctl *RouteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.RouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	route, err := ctl.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (ctl *RouteController) Activate(c *gin.Context) {
	ctl.changeStatus(c, ctl.svc.Activate)
}

func (ctl *RouteController) Deactivate(c *gin.Context) {
	ctl.changeStatus(c, ctl.svc.Deactivate)
}

func (ctl *RouteController) changeStatus(c *gin.Context, change func(ctx context.Context, id uint) (*models.Route, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := change(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (ctl *RouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted"})
}
