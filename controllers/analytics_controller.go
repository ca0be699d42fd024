package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mehmood09/restaurant-system/services"
)

type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetAnalytics returns the revenue and order-count rollups as of now.
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	summary, serviceErr := ac.analyticsService.Summary(c.Request.Context(), time.Now())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, summary)
}
