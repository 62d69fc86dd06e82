package routes

import (
	"net/http"
	"strings"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"ecocycle/internal/config"
	"ecocycle/internal/controllers"
	"ecocycle/internal/middleware"
)

// SetupRouter builds the engine and registers every route group.
func SetupRouter(
	cfg *config.Config,
	tokens *middleware.TokenIssuer,
	userCtl *controllers.UserController,
	requestCtl *controllers.RequestController,
	feedbackCtl *controllers.FeedbackController,
	adminCtl *controllers.AdminController,
) *gin.Engine {
	r := gin.New()

	// Request logging and recovery middleware
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	api := r.Group("/api")
	UserRoutes(api, cfg, tokens, userCtl, requestCtl, feedbackCtl)
	AdminRoutes(api, adminCtl, requestCtl, feedbackCtl)

	// Catch-all API 404
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}
