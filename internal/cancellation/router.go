package cancellation

import (
	"wayfare/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCancellationRoutes(router *gin.RouterGroup, controller Controller) {
	cancellationRoutes := router.Group("/cancellations")
	cancellationRoutes.Use(middleware.JWTAuth())
	{
		cancellationRoutes.GET("", controller.ListUserCancellations)
	}
}
