package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"ecocycle/internal/service"
)

// respondError converts a service error into the uniform {error: message}
// body: 400 for validation and credential failures, 404 for unresolved ids,
// 500 (logged, detail withheld) for storage faults.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		logrus.WithError(err).Error("storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
