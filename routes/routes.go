package routes

import (
	"time"

	"fixify/handlers"
	"fixify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, booking *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		api.GET("/availability", availability.GetAvailability)

		api.POST("/bookings", booking.CreateBooking)
		api.GET("/bookings/:id", booking.GetBooking)
		api.DELETE("/bookings/:id", booking.CancelBooking)
		api.PUT("/bookings/:id/reschedule", booking.RescheduleBooking)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthAdminMiddleware())
	{
		admin.GET("/bookings", booking.ListBookings)
		admin.POST("/availability/invalidate", availability.InvalidateAvailability)
	}
}
