package handlers

import (
	_ "bookmarks_api/docs" // registers swagger docs
	"bookmarks_api/internal/logger"
	"bookmarks_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil logger discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.accessLog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// Public auth endpoints
	h.registerAuthRoutes(router)

	// Everything below requires a bearer token
	protected := router.Group("", h.authMiddleware)
	{
		h.registerUserRoutes(protected)
		h.registerBookmarkRoutes(protected)
		protected.GET("/ws/bookmarks", h.wsBookmarks)
	}

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PATCH("", h.editMe)
	}
}

func (h *Handler) registerBookmarkRoutes(api *gin.RouterGroup) {
	bookmarks := api.Group("/bookmarks")
	{
		bookmarks.GET("", h.listBookmarks)
		bookmarks.POST("", h.createBookmark)
		bookmarks.GET("/:id", h.getBookmark)
		bookmarks.PATCH("/:id", h.editBookmark)
		bookmarks.DELETE("/:id", h.deleteBookmark)
	}
}
