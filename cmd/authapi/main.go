package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cctGameBot/api"
	"cctGameBot/models"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err := gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	port := os.Getenv("AUTH_PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("Auth service listening on :%s", port)
	if err := api.NewAuthRouter(db).Run(":" + port); err != nil {
		log.Fatalf("Error running auth service: %v", err)
	}
}
