package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/service"
)

// User exposes the user service over HTTP.
type User struct {
	service *service.User
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service *service.User, logger *logger.Logger) *User {
	return &User{
		service: service,
		logger:  logger,
	}
}

type createUserRequest struct {
	RUT        *string          `json:"rut"`
	Name       string           `json:"nombre" binding:"required"`
	FamilyName *string          `json:"apellido"`
	Email      string           `json:"correo" binding:"required,email"`
	BirthDate  *string          `json:"fNacimiento"`
	Password   string           `json:"contrasena" binding:"required"`
	TripCount  int32            `json:"rutasRecorridas" binding:"gte=0"`
	DistanceKM *decimal.Decimal `json:"kmRecorridos"`
	RoleID     *int32           `json:"idRol"`
	RegionID   *int32           `json:"idRegion"`
	StatusID   *int32           `json:"idEstado"`
}

type loginRequest struct {
	Email    string `json:"correo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type photoRequest struct {
	Photo string `json:"foto"`
}

// parseBirthDate accepts a plain date or a full RFC 3339 timestamp.
func parseBirthDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", *raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return int32(id), true
}

// List handles GET /usuarios. An empty registry responds 204.
func (h *User) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if len(users) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetByID handles GET /usuarios/:id.
func (h *User) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, h.service.ToDTO(user))
}

// GetByEmail handles GET /usuarios/buscar?correo=.
func (h *User) GetByEmail(c *gin.Context) {
	email := c.Query("correo")
	if email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "correo is required"})
		return
	}

	user, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, h.service.ToDTO(user))
}

// Create handles POST /usuarios.
func (h *User) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid fNacimiento"})
		return
	}

	user := model.User{
		RUT:          req.RUT,
		Name:         req.Name,
		FamilyName:   req.FamilyName,
		Email:        req.Email,
		BirthDate:    birthDate,
		PasswordHash: req.Password,
		TripCount:    req.TripCount,
		RoleID:       req.RoleID,
		RegionID:     req.RegionID,
		StatusID:     req.StatusID,
	}
	if req.DistanceKM != nil {
		user.DistanceKM = *req.DistanceKM
	}

	saved, err := h.service.Create(c.Request.Context(), user)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// UpdateName handles PATCH /usuarios/:id/nombre?nombre=.
func (h *User) UpdateName(c *gin.Context) {
	h.updateFromQuery(c, "nombre", h.service.UpdateName)
}

// UpdateFamilyName handles PATCH /usuarios/:id/apellido?apellido=.
func (h *User) UpdateFamilyName(c *gin.Context) {
	h.updateFromQuery(c, "apellido", h.service.UpdateFamilyName)
}

// UpdateEmail handles PATCH /usuarios/:id/correo?correo=.
func (h *User) UpdateEmail(c *gin.Context) {
	h.updateFromQuery(c, "correo", h.service.UpdateEmail)
}

func (h *User) updateFromQuery(c *gin.Context, param string, update func(ctx context.Context, id int32, v string) (model.User, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	value := c.Query(param)
	if value == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": param + " is required"})
		return
	}

	updated, err := update(c.Request.Context(), id, value)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateRegion handles PATCH /usuarios/:id/region?idRegion=.
func (h *User) UpdateRegion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	regionID, err := strconv.ParseInt(c.Query("idRegion"), 10, 32)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "idRegion is required"})
		return
	}

	updated, err := h.service.UpdateRegion(c.Request.Context(), id, int32(regionID))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UploadPhoto handles PUT /usuarios/:id/foto.
func (h *User) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdatePhoto(c.Request.Context(), id, req.Photo)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Login handles POST /usuarios/login.
func (h *User) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err := h.service.Login(c.Request.Context(), model.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
