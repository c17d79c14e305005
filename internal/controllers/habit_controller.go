package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"habitly-be/internal/middleware"
	"habitly-be/internal/models"
	"habitly-be/internal/service"
)

// HabitController serves the user's personal habit list: today's statuses and
// the adopt/rename/remove operations on the selection ledger.
type HabitController struct {
	selectionService service.SelectionService
	trackerService   service.TrackerService
}

func NewHabitController(selectionService service.SelectionService, trackerService service.TrackerService) *HabitController {
	return &HabitController{
		selectionService: selectionService,
		trackerService:   trackerService,
	}
}

// MyHabits handles GET /api/v1/my_habits - reconciles and returns today's statuses
func (hc *HabitController) MyHabits(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	response, err := hc.trackerService.MyHabits(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Adopt handles POST /api/v1/my_habits/:habitID
func (hc *HabitController) Adopt(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	response, err := hc.selectionService.Adopt(userID, c.Param("habitID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Rename handles PATCH /api/v1/my_habits/:habitID
func (hc *HabitController) Rename(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req models.RenameHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := hc.selectionService.Rename(userID, c.Param("habitID"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Remove handles DELETE /api/v1/remove_habit/:categoryID/:habitID. The
// category parameter mirrors the page the frontend removes from; resolution
// itself only needs the habit. The response message tells the caller which
// removal branch fired.
func (hc *HabitController) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	response, err := hc.selectionService.Remove(userID, c.Param("habitID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
