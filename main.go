package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/washease/laundry-app/config"
	"github.com/washease/laundry-app/models"
	"github.com/washease/laundry-app/router"
	"github.com/washease/laundry-app/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	utils.InitLogger()
	config.LoadConfig()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// A down store is not fatal: the server starts and answers 503 until
	// the database comes back. One delayed retry mirrors the connection
	// behavior the clients already expect.
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Printf("Failed to connect to database: %v", err)
		utils.InfoLogger.Println("Retrying connection in 2s...")
		time.Sleep(2 * time.Second)
		if db, err = config.InitDB(); err != nil {
			utils.ErrorLogger.Printf("Retry failed: %v", err)
		}
	}

	if db != nil {
		autoMigrate(db)
	}

	r := router.SetupRouter(db)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Laundry{},
		&models.ClothingItem{},
		&models.ActivityLog{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
