package analytics

import (
	"wayfare/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(router *gin.RouterGroup, controller Controller) {
	// Public landing-page stats
	router.GET("/stats/home", controller.GetHomeOverview)

	adminRoutes := router.Group("/admin/analytics")
	adminRoutes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminRoutes.GET("/bookings/overview", controller.GetBookingOverview)
		adminRoutes.GET("/bookings/daily", controller.GetDailyBookingStats)
	}
}
