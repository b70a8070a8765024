package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aqua_distribution/internal/models"
	"aqua_distribution/internal/service"
)

// ProgramController exposes the distribution program endpoints.
type ProgramController struct {
	svc *service.ProgramService
}

func NewProgramController(svc *service.ProgramService) *ProgramController {
	return &ProgramController{svc: svc}
}

// List returns all programs; ?organizationId= filters by organization.
func (ctl *ProgramController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if orgID := c.Query("organizationId"); orgID != "" {
		programs, err := ctl.svc.ListByOrganization(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"programs": programs})
		return
	}
	programs, err := ctl.svc.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (ctl *ProgramController) ListActive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusActive)
}

func (ctl *ProgramController) ListInactive(c *gin.Context) {
	ctl.listByStatus(c, models.StatusInactive)
}

func (ctl *ProgramController) listByStatus(c *gin.Context, status string) {
	programs, err := ctl.svc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (ctl *ProgramController) ListEnriched(c *gin.Context) {
	programs, err := ctl.svc.ListAllEnriched(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (ctl *ProgramController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	program, err := ctl.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": program})
}

func (ctl *ProgramController) GetEnriched(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	program, err := ctl.svc.GetEnrichedByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": program})
}

func (ctl *ProgramController) Create(c *gin.Context) {
	var input service.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateProgram: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	program, err := ctl.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"program": program})
}

func (ctl *ProgramController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	program, err := ctl.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": program})
}

func (ctl *ProgramController) Activate(c *gin.Context) {
	ctl.changeStatus(c, ctl.svc.Activate)
}

func (ctl *ProgramController) Deactivate(c *gin.Context) {
	ctl.changeStatus(c, ctl.svc.Deactivate)
}

func (ctl *ProgramController) changeStatus(c *gin.Context, change func(ctx context.Context, id uint) (*models.Program, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	program, err := change(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": program})
}

func (ctl *ProgramController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}
