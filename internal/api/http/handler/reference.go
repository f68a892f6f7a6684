package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/service"
)

// Reference exposes the administrative CRUD for one reference table.
type Reference struct {
	service *service.Reference
	logger  *logger.Logger
}

// NewReference creates a new Reference handler.
func NewReference(service *service.Reference, logger *logger.Logger) *Reference {
	return &Reference{
		service: service,
		logger:  logger,
	}
}

type createReferenceRequest struct {
	Name string `json:"nombre" binding:"required"`
}

// List handles GET on the reference collection. Empty tables respond 204.
func (h *Reference) List(c *gin.Context) {
	refs, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if len(refs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, refs)
}

// GetByID handles GET on a single reference row.
func (h *Reference) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ref, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ref)
}

// Create handles POST on the reference collection.
func (h *Reference) Create(c *gin.Context) {
	var req createReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.service.Create(c.Request.Context(), model.Reference{Name: req.Name})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}
