package router

import (
	"apitracker/internal/handler"

	"github.com/gin-gonic/gin"
)

type AnalyticsRouter struct {
	analyticsHandler *handler.AnalyticsHandler
}

func NewAnalyticsRouter(
	analyticsHandler *handler.AnalyticsHandler,
) *AnalyticsRouter {
	return &AnalyticsRouter{
		analyticsHandler: analyticsHandler,
	}
}

func (analyticsRouter *AnalyticsRouter) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api")
	{
		analytics := g.Group("/analytics")
		{
			analytics.GET("/most-used", analyticsRouter.analyticsHandler.MostUsed)
			analytics.GET("/error-rates", analyticsRouter.analyticsHandler.ErrorRates)
			analytics.GET("/response-times", analyticsRouter.analyticsHandler.ResponseTimes)
			analytics.GET("/summary", analyticsRouter.analyticsHandler.Summary)
		}
		g.GET("/requests", analyticsRouter.analyticsHandler.Recent)
	}
}
