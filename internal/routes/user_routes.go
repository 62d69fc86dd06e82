package routes

import (
	"github.com/gin-gonic/gin"

	"ecocycle/internal/config"
	"ecocycle/internal/controllers"
	"ecocycle/internal/middleware"
)

func UserRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	tokens *middleware.TokenIssuer,
	userCtl *controllers.UserController,
	requestCtl *controllers.RequestController,
	feedbackCtl *controllers.FeedbackController,
) {
	user := api.Group("/user")
	{
		user.POST("/register", userCtl.Register)
		user.POST("/login", userCtl.Login)
	}

	// The remaining user routes identify the caller by the userId in the
	// body or path; bearer tokens are enforced only when configured.
	authed := user.Group("")
	if cfg.AuthRequired {
		authed.Use(tokens.RequireAuth())
	}
	{
		authed.POST("/request", requestCtl.Submit)
		authed.POST("/feedback", feedbackCtl.Submit)
		authed.GET("/requests/:userId", requestCtl.ListForUser)
		authed.GET("/feedback/:userId", feedbackCtl.ListForUser)
	}
}
