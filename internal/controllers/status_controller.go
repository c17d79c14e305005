package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"habitly-be/internal/middleware"
	"habitly-be/internal/models"
	"habitly-be/internal/service"
)

// StatusController serves the daily status marking endpoint.
type StatusController struct {
	trackerService service.TrackerService
}

func NewStatusController(trackerService service.TrackerService) *StatusController {
	return &StatusController{
		trackerService: trackerService,
	}
}

// UpdateHabitStatus handles POST /api/v1/update_habit_status
func (sc *StatusController) UpdateHabitStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := sc.trackerService.Mark(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
