package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecocycle/internal/service"
)

// RequestController handles waste-pickup requests: user submission and
// listing, plus the admin review operations.
type RequestController struct {
	requests *service.RequestService
}

func NewRequestController(requests *service.RequestService) *RequestController {
	return &RequestController{requests: requests}
}

// submitRequestInput defines the expected JSON for submitting a pickup.
type submitRequestInput struct {
	UserID string  `json:"userId"`
	Type   string  `json:"type"`
	Kg     float64 `json:"kg"`
}

func (ctl *RequestController) Submit(c *gin.Context) {
	var input submitRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	created, err := ctl.requests.Submit(input.UserID, input.Type, input.Kg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

func (ctl *RequestController) ListForUser(c *gin.Context) {
	requests, err := ctl.requests.ListForUser(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (ctl *RequestController) ListAll(c *gin.Context) {
	requests, err := ctl.requests.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// updateRequestInput defines the admin review payload. Absent fields leave
// the record as is.
type updateRequestInput struct {
	RequestID    string   `json:"requestId"`
	Status       *string  `json:"status"`
	Amount       *float64 `json:"amount"`
	Accomplished *bool    `json:"accomplished"`
}

func (ctl *RequestController) Update(c *gin.Context) {
	var input updateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	updated, err := ctl.requests.UpdateStatus(input.RequestID, service.RequestUpdates{
		Status:       input.Status,
		Amount:       input.Amount,
		Accomplished: input.Accomplished,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
