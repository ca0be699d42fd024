package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/services"
)

// CategoryController serves the staff-side category management.
type CategoryController struct {
	menuService *services.MenuService
	cache       *CacheManager
}

func NewCategoryController(menuService *services.MenuService, cache *CacheManager) *CategoryController {
	return &CategoryController{menuService: menuService, cache: cache}
}

// ListCategories returns all categories ordered by name.
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, serviceErr := cc.menuService.ListCategories(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AddCategory creates a category.
func (cc *CategoryController) AddCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, serviceErr := cc.menuService.CreateCategory(c.Request.Context(), &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"message": "Category added successfully", "category": category})
}

// EditCategory updates a category.
func (cc *CategoryController) EditCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, serviceErr := cc.menuService.UpdateCategory(c.Request.Context(), id, &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
}

// DeleteCategory removes a category together with its menu items.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	if serviceErr := cc.menuService.DeleteCategory(c.Request.Context(), id); serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
