package routes

import (
	"net/http"
	"time"

	"serenibook/handlers"
	"serenibook/middleware"
	"serenibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfessionalRoutes registers account, availability-setup and
// settings endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.POST("/register", hb.RegisterProfessional)
		api.POST("/login", hb.AuthenticateProfessional)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		api.GET("/me", hb.GetProfessionalProfile)
		api.PUT("/availability", hb.SetAvailability)
		api.PUT("/settings", hb.UpdateSettings)
		api.DELETE("/revoke", hb.RevokeProfessionalToken)
	}
}

// RegisterAvailabilityRoutes registers the public availability endpoints;
// clients browsing bookable slots do not authenticate.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:professionalID", hb.GetDayAvailability)
	}
}

// RegisterBookingRoutes sets up the endpoints for bookings and group sessions.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		bookingGroup.POST("", hb.CreateBooking)
		bookingGroup.POST("/check-conflicts", hb.CheckConflicts)
		bookingGroup.DELETE("/:id", hb.CancelBooking)
	}

	sessionGroup := r.Group("/api/sessions")
	{
		sessionGroup.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		sessionGroup.POST("", hb.CreateGroupSession)
		sessionGroup.POST("/:id/register", hb.RegisterForSession)
		sessionGroup.DELETE("/:id", hb.CancelGroupSession)
	}
}

// RegisterCatalogRoutes sets up service-offering and client management.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	serviceGroup := r.Group("/api/services")
	{
		serviceGroup.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		serviceGroup.POST("", hb.CreateService)
		serviceGroup.GET("", hb.ListServices)
		serviceGroup.DELETE("/:id", hb.DeleteService)
	}

	clientGroup := r.Group("/api/clients")
	{
		clientGroup.Use(middleware.JWTAuthProfessionalMiddleware(hb.ProfessionalRepo))
		clientGroup.POST("", hb.CreateClient)
		clientGroup.GET("", hb.ListClients)
		clientGroup.DELETE("/:id", hb.DeleteClient)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm SereniBook",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfessionalRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
