package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"ecocycle/internal/middleware"
	"ecocycle/internal/service"
)

// UserController handles registration and login. Responses never include
// the stored password; identity is proven with a signed token instead.
type UserController struct {
	users  *service.UserService
	tokens *middleware.TokenIssuer
}

func NewUserController(users *service.UserService, tokens *middleware.TokenIssuer) *UserController {
	return &UserController{users: users, tokens: tokens}
}

func (ctl *UserController) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	id, err := ctl.users.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.tokens.GenerateToken(id)
	if err != nil {
		logrus.WithError(err).Error("could not generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registered successfully",
		"id":      id,
		"token":   token,
	})
}

func (ctl *UserController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	user, err := ctl.users.Login(body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.tokens.GenerateToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("could not generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Sanitized(),
	})
}
