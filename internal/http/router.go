package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nurpe/paintraffle/internal/http/middleware"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string, allowedOrigins []string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", handler.health)
	router.POST("/auth/register", handler.register)
	router.POST("/auth/login", handler.login)
	router.POST("/auth/admin/login", handler.adminLogin)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/profile", handler.profile)
		protected.PUT("/profile", handler.updateProfile)

		protected.POST("/projects", handler.submitProject)
		protected.GET("/projects", handler.listProjects)
		protected.GET("/projects/:id", handler.getProject)
		protected.PUT("/projects/:id", handler.updateProject)
		protected.POST("/projects/:id/images", handler.uploadImages)
		protected.DELETE("/projects/:id/images/:imageID", handler.deleteImage)

		protected.GET("/raffle", handler.raffleStanding)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, middleware.RequireValidator())
	{
		admin.GET("/projects", handler.adminListProjects)
		admin.POST("/projects/:id/review", handler.reviewProject)
		admin.GET("/raffle/summary", handler.raffleSummary)
		admin.POST("/raffle/export", handler.exportRaffleExcel)
		admin.POST("/raffle/export/pdf", handler.exportRafflePDF)
	}

	return router
}
