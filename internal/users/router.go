package users

import (
	"wayfare/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup, controller Controller) {
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("/me", controller.GetMe)
		userRoutes.PUT("/me", controller.UpdateMe)
		userRoutes.POST("/me/profile", controller.CreateProfile)
		userRoutes.GET("/me/profile", controller.GetProfile)
		userRoutes.PUT("/me/profile", controller.UpdateProfile)
	}
}
