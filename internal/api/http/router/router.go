package router

import (
	"github.com/gin-gonic/gin"

	"github.com/condor-cl/users-api/internal/api/http/handler"
	"github.com/condor-cl/users-api/internal/api/http/middleware"
	"github.com/condor-cl/users-api/internal/logger"
)

// Router wires the HTTP handlers into a gin engine.
type Router struct {
	users    *handler.User
	roles    *handler.Reference
	regions  *handler.Reference
	statuses *handler.Reference
	logger   *logger.Logger
}

// New creates a new Router instance.
func New(
	users *handler.User,
	roles *handler.Reference,
	regions *handler.Reference,
	statuses *handler.Reference,
	logger *logger.Logger,
) *Router {
	return &Router{
		users:    users,
		roles:    roles,
		regions:  regions,
		statuses: statuses,
		logger:   logger,
	}
}

// Register builds the gin engine with all middleware and routes.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logging(r.logger))

	api := engine.Group("/api/v1")

	users := api.Group("/usuarios")
	{
		users.GET("", r.users.List)
		users.GET("/buscar", r.users.GetByEmail)
		users.GET("/:id", r.users.GetByID)
		users.POST("", r.users.Create)
		users.POST("/login", r.users.Login)
		users.PATCH("/:id/nombre", r.users.UpdateName)
		users.PATCH("/:id/apellido", r.users.UpdateFamilyName)
		users.PATCH("/:id/correo", r.users.UpdateEmail)
		users.PATCH("/:id/region", r.users.UpdateRegion)
		users.PUT("/:id/foto", r.users.UploadPhoto)
	}

	registerReference(api, "/roles", r.roles)
	registerReference(api, "/regiones", r.regions)
	registerReference(api, "/estados", r.statuses)

	return engine
}

func registerReference(group *gin.RouterGroup, path string, h *handler.Reference) {
	refs := group.Group(path)
	{
		refs.GET("", h.List)
		refs.GET("/:id", h.GetByID)
		refs.POST("", h.Create)
	}
}
