package common

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"cctGameBot/models"
	"cctGameBot/services/userService"
)

// AuthStatus is the outcome of the per-update access gate.
type AuthStatus int

const (
	StatusOK AuthStatus = iota
	StatusNotRegistered
	StatusWrongGroup
)

// Authorize resolves the acting user by sender id and checks that the
// message arrived in the chat the user is bound to. This is the only
// access-control gate in the system.
func Authorize(db *gorm.DB, userID int64, chatID int64) (*models.User, AuthStatus) {
	user, err := userService.GetUser(db, userID)
	if err != nil {
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, StatusNotRegistered
	}
	if user == nil {
		return nil, StatusNotRegistered
	}
	if user.GroupID != strconv.FormatInt(chatID, 10) {
		return user, StatusWrongGroup
	}
	return user, StatusOK
}

// SendError notifies the chat, logs the failure and persists it to the
// error_logs table. Bot paths never propagate errors past this point.
func SendError(bot *tgbotapi.BotAPI, chatID int64, err error, db *gorm.DB) {
	log.Printf("Error in chat %d: %v", chatID, err)

	if bot != nil {
		msg := tgbotapi.NewMessage(chatID, "An error occured, please try again.")
		if _, sendErr := bot.Send(msg); sendErr != nil {
			log.Printf("Error sending failure notice: %v", sendErr)
		}
	}

	errLog := models.ErrorLog{
		ChatID:  strconv.FormatInt(chatID, 10),
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}
