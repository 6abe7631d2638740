package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cctGameBot/models"
	"cctGameBot/services"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err = gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.InventoryItem{}, &models.Location{}, &models.ErrorLog{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatalf("TELEGRAM_TOKEN not set in environment variables")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("Error creating Telegram bot: %v", err)
	}
	log.Printf("Authorized on account %s", bot.Self.UserName)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// The webhook always answers ok; failures are reported back into the
	// chat, never through the HTTP status.
	router.POST("/webhook", func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			log.Printf("Error decoding update: %v", err)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		switch {
		case update.Message != nil && update.Message.IsCommand():
			services.HandleCommand(bot, update, db)
		case update.CallbackQuery != nil:
			services.HandleCallback(bot, update, db)
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Bot webhook listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error running webhook server: %v", err)
	}
}
