package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecocycle/internal/service"
)

// FeedbackController handles user feedback and the admin reply flow.
type FeedbackController struct {
	feedback *service.FeedbackService
}

func NewFeedbackController(feedback *service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

func (ctl *FeedbackController) Submit(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	if _, err := ctl.feedback.Submit(input.UserID, input.Text); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted"})
}

func (ctl *FeedbackController) ListForUser(c *gin.Context) {
	feedback, err := ctl.feedback.ListForUser(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (ctl *FeedbackController) ListAll(c *gin.Context) {
	feedback, err := ctl.feedback.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (ctl *FeedbackController) Reply(c *gin.Context) {
	var input struct {
		FeedbackID string `json:"feedbackId"`
		Reply      string `json:"reply"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	updated, err := ctl.feedback.Reply(input.FeedbackID, input.Reply)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Reply saved",
		"feedback": updated,
	})
}
