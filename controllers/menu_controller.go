package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mehmood09/restaurant-system/services"
)

// MenuController serves the public browsing endpoints.
type MenuController struct {
	menuService *services.MenuService
	cache       *CacheManager
	validator   *RequestValidator
}

func NewMenuController(menuService *services.MenuService, cache *CacheManager) *MenuController {
	return &MenuController{
		menuService: menuService,
		cache:       cache,
		validator:   NewRequestValidator(),
	}
}

// Home returns the landing page data: a few categories and featured items.
func (mc *MenuController) Home(c *gin.Context) {
	page, serviceErr := mc.menuService.Home(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Menu lists available items, optionally filtered by ?category=<id>.
func (mc *MenuController) Menu(c *gin.Context) {
	categoryID, cacheKey, err := mc.validator.ParseCategoryFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if page, ok := mc.cache.GetMenu(c.Request.Context(), cacheKey); ok {
		c.JSON(http.StatusOK, page)
		return
	}

	page, serviceErr := mc.menuService.Menu(c.Request.Context(), categoryID)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	mc.cache.SetMenuAsync(cacheKey, page)
	c.JSON(http.StatusOK, page)
}
