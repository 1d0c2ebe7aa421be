package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washease/laundry-app/controllers"
	"github.com/washease/laundry-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	laundryCtrl := controllers.NewLaundryController(db)
	employeeCtrl := controllers.NewEmployeeController(db)

	// Health check: reports store reachability without failing the request.
	r.GET("/", func(c *gin.Context) {
		database := "Disconnected"
		if db != nil {
			if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
				database = "Connected"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"message":   "WashEase API is running...",
			"status":    "OK",
			"database":  database,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	api.Use(middlewares.RequireDB(db))

	// Credential endpoints get the strict limiter.
	auth := api.Group("/auth")
	{
		auth.POST("/signup", middlewares.NewStrictRateLimiter(), authCtrl.Signup)
		auth.POST("/login", middlewares.NewStrictRateLimiter(), authCtrl.Login)

		profile := auth.Group("/")
		profile.Use(middlewares.AuthMiddleware(db))
		profile.GET("/profile", authCtrl.GetProfile)
		profile.PUT("/profile", authCtrl.UpdateProfile)
	}

	laundry := api.Group("/laundry")
	laundry.Use(middlewares.AuthMiddleware(db))
	{
		laundry.POST("", laundryCtrl.CreateLaundry)
		laundry.GET("", laundryCtrl.GetMyLaundry)
		laundry.GET("/all", laundryCtrl.GetAllLaundry)
		laundry.PUT("/:id", laundryCtrl.UpdateLaundryStatus)
		laundry.DELETE("/:id", laundryCtrl.DeleteLaundry)
	}

	employee := api.Group("/employee")
	{
		employee.POST("/login", middlewares.NewStrictRateLimiter(), employeeCtrl.Login)

		orders := employee.Group("/orders")
		orders.Use(middlewares.EmployeeAuthMiddleware(db))
		orders.GET("", employeeCtrl.GetOrders)
		orders.GET("/:id", employeeCtrl.GetOrderDetails)
		orders.POST("/:id/accept", employeeCtrl.AcceptOrder)
		orders.POST("/:id/reject", employeeCtrl.RejectOrder)
		orders.PUT("/:id/status", employeeCtrl.UpdateOrderStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
