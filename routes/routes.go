package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/isLah-15/CarDB-Render/config"
	"github.com/isLah-15/CarDB-Render/controllers"
	"github.com/isLah-15/CarDB-Render/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", config.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/verify", controllers.Verify)
		auth.POST("/login", controllers.Login)

		admin := auth.Group("", utils.AuthMiddleware(), utils.AdminOnly())
		{
			admin.GET("/users", controllers.GetUsers)
			admin.PUT("/user/:id", controllers.UpdateUserRole)
			admin.DELETE("/user/:id", controllers.DeleteUser)
		}
	}

	db := config.DB

	controllers.NewCarResource(db).RegisterRoutes(r.Group("/car"))
	controllers.NewLocationResource(db).RegisterRoutes(r.Group("/location"))
	controllers.NewReservationResource(db).RegisterRoutes(r.Group("/reservation"))
	controllers.NewBookingResource(db).RegisterRoutes(r.Group("/booking"))
	controllers.NewPaymentResource(db).RegisterRoutes(r.Group("/payment"))
	controllers.NewMaintenanceResource(db).RegisterRoutes(r.Group("/maintenance"))
	controllers.NewInsuranceResource(db).RegisterRoutes(r.Group("/insurance"))

	// Customer is the one variant: create and update go through dedicated
	// handlers so passwords are always hashed and never replaced blindly.
	customerRes := controllers.NewCustomerResource(db)
	customer := r.Group("/customer")
	{
		customer.POST("", controllers.CreateCustomer)
		customer.GET("", customerRes.List)
		customer.GET("/:id", customerRes.Get)
		customer.PUT("/:id", controllers.UpdateCustomer)
		customer.DELETE("/:id", customerRes.Delete)
	}

	return r
}
