package routes

import (
	"github.com/gin-gonic/gin"

	"ecocycle/internal/controllers"
)

func AdminRoutes(
	api *gin.RouterGroup,
	adminCtl *controllers.AdminController,
	requestCtl *controllers.RequestController,
	feedbackCtl *controllers.FeedbackController,
) {
	admin := api.Group("/admin")
	{
		admin.GET("/users", adminCtl.ListUsers)
		admin.GET("/requests", requestCtl.ListAll)
		admin.GET("/feedback", feedbackCtl.ListAll)

		admin.POST("/user/update", adminCtl.UpdateUser)
		admin.POST("/user/delete", adminCtl.DeleteUser)
		admin.POST("/request/update", requestCtl.Update)
		admin.POST("/feedback/reply", feedbackCtl.Reply)
	}
}
