package bookings

import (
	"wayfare/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Use(middleware.JWTAuth())
	{
		bookingRoutes.POST("", controller.CreateBooking)
		bookingRoutes.GET("", controller.ListUserBookings)
		bookingRoutes.GET("/:bookingId", controller.GetBooking)
		bookingRoutes.POST("/:bookingId/confirm", controller.ConfirmBooking)
		bookingRoutes.POST("/:bookingId/cancel", controller.CancelBooking)
		bookingRoutes.GET("/:bookingId/refund-quote", controller.GetRefundQuote)
	}
}
