package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lezit/transports-server/internal/container"
	"github.com/lezit/transports-server/internal/handlers"
	"github.com/lezit/transports-server/internal/middleware"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(gin.Recovery())

	logger := c.Logger

	api := r.Group("/api")
	{
		api.GET("/health", func(gc *gin.Context) {
			gc.JSON(200, gin.H{
				"status":  "OK",
				"service": "lezit-transports-api",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(c.AuthService, logger))
			auth.POST("/login", handlers.Login(c.AuthService, logger))

			auth.GET("/google", handlers.OAuthBegin(c.OAuthService, services.ProviderGoogle, logger))
			auth.GET("/google/callback", handlers.OAuthCallback(c.OAuthService, services.ProviderGoogle, c.Config.FrontendURL, logger))
			auth.GET("/facebook", handlers.OAuthBegin(c.OAuthService, services.ProviderFacebook, logger))
			auth.GET("/facebook/callback", handlers.OAuthCallback(c.OAuthService, services.ProviderFacebook, c.Config.FrontendURL, logger))
		}

		contact := api.Group("/contact")
		{
			contact.POST("/contact", handlers.SubmitContactForm(c.ContactService, logger))
			contact.POST("/support", handlers.SubmitSupportRequest(c.ContactService, logger))
		}

		serviceRoutes := api.Group("/services")
		{
			serviceRoutes.GET("", handlers.GetServices(c.CatalogService, logger))
			serviceRoutes.GET("/:id", handlers.GetServiceByID(c.CatalogService, logger))

			adminOnly := serviceRoutes.Group("")
			adminOnly.Use(middleware.AuthMiddleware(c.Config.JWTSecret), middleware.RequireRole(models.RoleAdmin))
			{
				adminOnly.POST("", handlers.CreateService(c.CatalogService, logger))
				adminOnly.PUT("/:id", handlers.UpdateService(c.CatalogService, logger))
				adminOnly.DELETE("/:id", handlers.DeleteService(c.CatalogService, logger))
			}
		}

		bookingRoutes := api.Group("/bookings")
		bookingRoutes.Use(middleware.AuthMiddleware(c.Config.JWTSecret))
		{
			bookingRoutes.POST("", handlers.CreateBooking(c.BookingService, logger))
			bookingRoutes.GET("/my-bookings", handlers.GetMyBookings(c.BookingService, logger))
			bookingRoutes.GET("/:id", handlers.GetBookingByID(c.BookingService, logger))
			bookingRoutes.PUT("/:id/cancel", handlers.CancelBooking(c.BookingService, logger))
			bookingRoutes.PUT("/:id/status", middleware.RequireRole(models.RoleAdmin), handlers.UpdateBookingStatus(c.BookingService, logger))
		}

		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(c.Config.JWTSecret), middleware.RequireRole(models.RoleAdmin))
		{
			adminRoutes.GET("/stats", handlers.GetAdminStats(c.AdminService, logger))
			adminRoutes.GET("/users", handlers.GetAdminUsers(c.AdminService, logger))
			adminRoutes.GET("/bookings", handlers.GetAdminBookings(c.AdminService, logger))
			adminRoutes.PUT("/users/:id/status", handlers.UpdateUserStatus(c.AdminService, logger))
			adminRoutes.PUT("/bookings/:id/status", handlers.UpdateBookingStatus(c.BookingService, logger))
			adminRoutes.PUT("/services/:id/status", handlers.UpdateServiceStatus(c.CatalogService, logger))
		}
	}

	return r
}
