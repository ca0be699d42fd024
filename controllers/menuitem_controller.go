package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/services"
)

// MenuItemController serves the staff-side menu item management.
type MenuItemController struct {
	menuService *services.MenuService
	cache       *CacheManager
}

func NewMenuItemController(menuService *services.MenuService, cache *CacheManager) *MenuItemController {
	return &MenuItemController{menuService: menuService, cache: cache}
}

// ListMenuItems returns the full catalog, unavailable items included.
func (mc *MenuItemController) ListMenuItems(c *gin.Context) {
	items, serviceErr := mc.menuService.ListMenuItems(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

// AddMenuItem creates a menu item.
func (mc *MenuItemController) AddMenuItem(c *gin.Context) {
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, serviceErr := mc.menuService.CreateMenuItem(c.Request.Context(), &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	mc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully", "menu_item": item})
}

// EditMenuItem updates a menu item.
func (mc *MenuItemController) EditMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID format"})
		return
	}

	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, serviceErr := mc.menuService.UpdateMenuItem(c.Request.Context(), id, &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	mc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully", "menu_item": item})
}

// DeleteMenuItem removes a menu item.
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID format"})
		return
	}

	if serviceErr := mc.menuService.DeleteMenuItem(c.Request.Context(), id); serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	mc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// ToggleAvailability flips a menu item's availability flag.
func (mc *MenuItemController) ToggleAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID format"})
		return
	}

	item, serviceErr := mc.menuService.ToggleAvailability(c.Request.Context(), id)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	mc.cache.Invalidate(c.Request.Context())
	status := "unavailable"
	if item.IsAvailable {
		status = "available"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      item.Name + " is now " + status,
		"is_available": item.IsAvailable,
	})
}
