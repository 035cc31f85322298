package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vehicle-rental-api/handlers"
	"vehicle-rental-api/middleware"
	"vehicle-rental-api/models"
	"vehicle-rental-api/services"
)

// SetupRoutes wires handlers onto /api/v1 with their auth requirements.
func SetupRoutes(r *gin.Engine, db *gorm.DB, auth *middleware.AuthManager) {
	authHandler := handlers.NewAuthHandler(services.NewAuthService(db), auth)
	vehicleHandler := handlers.NewVehicleHandler(services.NewVehicleService(db))
	userHandler := handlers.NewUserHandler(services.NewUserService(db))
	bookingHandler := handlers.NewBookingHandler(services.NewBookingService(db))

	v1 := r.Group("/api/v1")

	// ── Auth (public) ──────────────────────────────────────────────
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/signin", authHandler.Signin)
	}

	// ── Vehicles: public catalog, admin-only management ────────────
	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.Get)
		vehicles.POST("", auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), vehicleHandler.Create)
		vehicles.PUT("/:id", auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), vehicleHandler.Update)
		vehicles.DELETE("/:id", auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), vehicleHandler.Delete)
	}

	// ── Users ──────────────────────────────────────────────────────
	users := v1.Group("/users")
	users.Use(auth.AuthRequired())
	{
		users.GET("", middleware.RoleRequired(models.RoleAdmin), userHandler.List)
		// self-or-admin check happens in the handler
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin), userHandler.Delete)
	}

	// ── Bookings ───────────────────────────────────────────────────
	bookings := v1.Group("/bookings")
	bookings.Use(auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleCustomer))
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.List)
		bookings.PUT("/:id", bookingHandler.UpdateStatus)
	}
}
