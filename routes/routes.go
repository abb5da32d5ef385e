package routes

import (
	"net/http"
	"time"

	"stilrandevu/handlers"
	"stilrandevu/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.DELETE("/session", hb.RevokeTokenHandler)
	}
}

// RegisterProviderRoutes registers provider browsing and management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public browsing endpoints.
		api.GET("", hb.ListProvidersHandler)
		api.GET("/nearby", hb.NearbyProvidersHandler)
		api.GET("/id/:id", hb.GetProviderByIDHandler)

		// Management endpoints require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/register", hb.RegisterProviderHandler)
		protected.PATCH("/update/:id", hb.UpdateProviderHandler)
		protected.DELETE("/delete/:id", hb.DeleteProviderHandler)
		protected.POST("/:id/services", hb.AddServiceHandler)
		protected.DELETE("/:id/services/:serviceID", hb.RemoveServiceHandler)
		protected.POST("/:id/image", hb.UploadProviderImageHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("/session", hb.InitiateSessionHandler)
		bookingGroup.PUT("/session/:sessionID/services", hb.ToggleServiceHandler)
		bookingGroup.PUT("/session/:sessionID/slot", hb.ChooseSlotHandler)
		bookingGroup.POST("/confirm", hb.ConfirmBookingHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
	}
}

// RegisterAppointmentRoutes registers appointment listing and lifecycle
// endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/mine", hb.ListMyAppointmentsHandler)
		api.GET("/incoming/:providerID", hb.ListIncomingAppointmentsHandler)
		api.PUT("/:id/complete", hb.CompleteAppointmentHandler)
		api.POST("/:id/rating", hb.RateAppointmentHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterFavoriteRoutes registers the favorite-provider endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListFavoritesHandler)
		api.POST("/toggle", hb.ToggleFavoriteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
}
