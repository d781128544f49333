package routes

import (
	"net/http"

	"trailhead/handlers"
	"trailhead/middleware"
	"trailhead/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all HTTP routes on the router.
func SetupRoutes(router *gin.Engine, h *handlers.HandlerBundle) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public: auth and service browsing.
	auth := api.Group("/auth")
	{
		auth.POST("/users/register", h.RegisterUserHandler)
		auth.POST("/users/login", h.LoginUserHandler)
		auth.POST("/providers/register", h.RegisterProviderHandler)
		auth.POST("/providers/login", h.LoginProviderHandler)
	}

	services := api.Group("/services")
	{
		services.GET("", h.ListServicesHandler)
		services.GET("/:id", h.GetServiceHandler)
		services.GET("/:id/availability", h.GetAvailabilityHandler)
	}

	// Authenticated user surface.
	userAPI := api.Group("")
	userAPI.Use(middleware.JWTAuthMiddleware("user"))
	{
		userAPI.POST("/bookings", h.CreateBookingHandler)
		userAPI.GET("/bookings", h.ListUserBookingsHandler)
		userAPI.POST("/bookings/:id/cancel", h.CancelBookingHandler)
		userAPI.POST("/bookings/:id/payment-intent", h.CreatePaymentIntentHandler)
		userAPI.POST("/bookings/:id/confirm-payment", h.ConfirmPaymentHandler)

		userAPI.GET("/users/me", h.GetUserProfileHandler)
		userAPI.PUT("/users/me/fcm-token", h.UpdateFCMTokenHandler)

		userAPI.GET("/notifications", h.ListUserNotificationsHandler)
		userAPI.POST("/notifications/:id/read", h.MarkNotificationReadHandler)
	}

	// Authenticated provider surface.
	providerAPI := api.Group("/provider")
	providerAPI.Use(middleware.JWTAuthMiddleware("provider"))
	{
		providerAPI.GET("/me", h.GetProviderProfileHandler)
		providerAPI.POST("/services", h.CreateServiceHandler)
		providerAPI.GET("/services", h.ListProviderServicesHandler)
		providerAPI.PUT("/services/:id", h.UpdateServiceHandler)
		providerAPI.POST("/services/:id/photo", h.UploadServicePhotoHandler)

		providerAPI.GET("/bookings", h.ListProviderBookingsHandler)
		providerAPI.POST("/bookings/:id/complete", h.CompleteBookingHandler)

		providerAPI.GET("/notifications", h.ListProviderNotificationsHandler)
		providerAPI.POST("/notifications/:id/read", h.MarkNotificationReadHandler)
	}
}
