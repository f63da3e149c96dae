package handler

import (
	"net/http"

	"apitracker/internal/pkg/response"
	"apitracker/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// MostUsed GET /api/analytics/most-used?limit=10&hours=24
func (h *AnalyticsHandler) MostUsed(c *gin.Context) {
	limit := intQueryDefault(c.Query("limit"), service.DefaultMostUsedLimit)
	hours := intQueryDefault(c.Query("hours"), service.DefaultWindowHours)

	result, err := h.analyticsService.MostUsed(c.Request.Context(), limit, hours)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ErrorRates GET /api/analytics/error-rates?hours=24
func (h *AnalyticsHandler) ErrorRates(c *gin.Context) {
	hours := intQueryDefault(c.Query("hours"), service.DefaultWindowHours)

	result, err := h.analyticsService.ErrorRates(c.Request.Context(), hours)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResponseTimes GET /api/analytics/response-times?hours=24
func (h *AnalyticsHandler) ResponseTimes(c *gin.Context) {
	hours := intQueryDefault(c.Query("hours"), service.DefaultWindowHours)

	result, err := h.analyticsService.ResponseTimes(c.Request.Context(), hours)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Summary GET /api/analytics/summary?hours=24
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	hours := intQueryDefault(c.Query("hours"), service.DefaultWindowHours)

	result, err := h.analyticsService.Summary(c.Request.Context(), hours)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Recent GET /api/requests?limit=100&hours=1
func (h *AnalyticsHandler) Recent(c *gin.Context) {
	limit := intQueryDefault(c.Query("limit"), service.DefaultRecentLimit)
	hours := intQueryDefault(c.Query("hours"), service.DefaultRecentHours)

	result, err := h.analyticsService.Recent(c.Request.Context(), limit, hours)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
