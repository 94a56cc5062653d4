package routes

import (
	"os"
	"strings"

	"locappoint-backend/config"
	"locappoint-backend/controllers"
	"locappoint-backend/models"
	"locappoint-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterOwner)
		auth.POST("/register-client", controllers.RegisterClient)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public directory and booking flow
	public := r.Group("/api/public")
	{
		public.GET("/businesses", controllers.ListBusinesses)
		public.GET("/businesses/:id", controllers.GetBusiness)
		public.GET("/businesses/:id/slots", controllers.GetSlots)
		public.POST("/businesses/:id/appointments", controllers.CreateBooking)
		public.GET("/categories", controllers.GetCategories)
	}

	// Business management portal
	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleOwner))
	{
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		availability := api.Group("/availability")
		{
			availability.POST("", controllers.CreateAvailability)
			availability.GET("", controllers.GetAvailability)
			availability.PUT("/:id", controllers.UpdateAvailability)
			availability.DELETE("/:id", controllers.DeleteAvailability)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id/status", controllers.UpdateAppointmentStatus)
		}

		api.GET("/dashboard", controllers.GetDashboardOverview)

		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetBusinessProfile)
			profile.PUT("", controllers.UpdateBusinessProfile)
		}
	}

	// Client self-service portal
	client := r.Group("/api/client")
	client.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleClient))
	{
		client.GET("/appointments", controllers.GetMyAppointments)
		client.PUT("/appointments/:id/cancel", controllers.CancelMyAppointment)
		client.POST("/businesses/:id/appointments", controllers.CreateBooking)
	}

	return r
}
