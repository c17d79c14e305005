package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"habitly-be/internal/middleware"
	"habitly-be/internal/models"
	"habitly-be/internal/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCategories handles GET /api/v1/categories
func (cc *CatalogController) ListCategories(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	response, err := cc.catalogService.Categories(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/categories
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	category, err := cc.catalogService.CreateCategory(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:categoryID
func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	if err := cc.catalogService.DeleteCategory(userID, c.Param("categoryID")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{
		Success: true,
		Message: "Custom category deleted",
	})
}

// ListHabits handles GET /api/v1/categories/:categoryID/habits
func (cc *CatalogController) ListHabits(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	response, err := cc.catalogService.HabitsInCategory(userID, c.Param("categoryID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateHabit handles POST /api/v1/categories/:categoryID/habits
func (cc *CatalogController) CreateHabit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req models.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	habit, err := cc.catalogService.CreateHabit(userID, c.Param("categoryID"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// UpdateHabit handles PUT /api/v1/habits/:habitID - renames a custom habit
func (cc *CatalogController) UpdateHabit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var req models.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := cc.catalogService.UpdateHabit(userID, c.Param("habitID"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{
		Success: true,
		Message: "Habit updated",
	})
}
