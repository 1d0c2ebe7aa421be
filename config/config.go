package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	Port       string
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Port = getEnv("PORT", "5001")
	JwtSecret = getEnv("JWT_SECRET", "WashEaseDevSecret2024")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "3306")
	DbUser = getEnv("DB_USER", "root")
	DbPassword = getEnv("DB_PASSWORD", "")
	DbName = getEnv("DB_NAME", "washease")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// InitDB opens the MySQL handle. A failure here is not fatal to the caller:
// the server still starts and requests are answered with 503 until the store
// is reachable again (see middlewares.RequireDB).
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		DbUser, DbPassword, DbHost, DbPort, DbName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(45 * time.Second)

	return db, nil
}
