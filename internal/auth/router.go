package auth

import (
	"wayfare/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/register", controller.Register)
		authRoutes.POST("/login", controller.Login)
		authRoutes.POST("/refresh", controller.RefreshToken)
		authRoutes.POST("/logout", controller.Logout)

		protected := authRoutes.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.PUT("/change-password", controller.ChangePassword)
		}
	}
}
