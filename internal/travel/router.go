package travel

import (
	"wayfare/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTravelRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse travel options
	publicTravel := router.Group("/travel-options")
	{
		publicTravel.GET("", controller.ListTravelOptions)
		publicTravel.GET("/upcoming", controller.GetUpcomingTravelOptions)
		publicTravel.GET("/:travelId", controller.GetTravelOption)
	}

	// Admin routes - inventory management
	adminTravel := router.Group("/admin/travel-options")
	adminTravel.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminTravel.POST("", controller.CreateTravelOption)
		adminTravel.PUT("/:travelId", controller.UpdateTravelOption)
		adminTravel.DELETE("/:travelId", controller.DeleteTravelOption)
	}
}
