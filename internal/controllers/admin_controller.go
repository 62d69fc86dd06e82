package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecocycle/internal/service"
)

// AdminController handles the admin user-management operations. The stored
// admin credential record is never consulted; there is no admin login flow.
type AdminController struct {
	users *service.UserService
}

func NewAdminController(users *service.UserService) *AdminController {
	return &AdminController{users: users}
}

func (ctl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctl.users.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// updateUserInput carries the allow-listed mutable fields. Attempts to
// change id, email or password through this path are ignored.
type updateUserInput struct {
	UserID  string              `json:"userId"`
	Updates service.UserUpdates `json:"updates"`
}

func (ctl *AdminController) UpdateUser(c *gin.Context) {
	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	user, err := ctl.users.Update(input.UserID, input.Updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated",
		"user":    user.Sanitized(),
	})
}

func (ctl *AdminController) DeleteUser(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	if err := ctl.users.Delete(input.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
