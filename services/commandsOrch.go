package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"cctGameBot/services/common"
	"cctGameBot/services/userService"
)

// HandleCommand dispatches a slash-command message.
func HandleCommand(bot *tgbotapi.BotAPI, update tgbotapi.Update, db *gorm.DB) {
	message := update.Message
	// Channel posts carry no sender; there is no user to authorize.
	if message.From == nil {
		return
	}
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		user, status := common.Authorize(db, message.From.ID, chatID)
		if status != common.StatusOK {
			reply := "❌ Wrong group."
			if status == common.StatusNotRegistered {
				reply = "❌ Not in DB."
			}
			sendText(bot, chatID, reply)
			return
		}
		text, kb := MainMenu(user)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = kb
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := bot.Send(msg); err != nil {
			log.Printf("Error sending main menu: %v", err)
		}
	case "init":
		reply, err := LinkTeam(db, message.Chat, message.CommandArguments())
		if err != nil {
			common.SendError(bot, chatID, err, db)
			return
		}
		sendText(bot, chatID, reply)
	}
}

// LinkTeam binds the current chat to a team's designated record. The reply
// is what the bot answers in chat; err is set only on store failures.
func LinkTeam(db *gorm.DB, chat *tgbotapi.Chat, args string) (string, error) {
	if !chat.IsGroup() && !chat.IsSuperGroup() {
		return "❌ Must run in a group.", nil
	}

	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "⚠️ Usage: /init <team_id>", nil
	}
	teamID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || teamID < 0 {
		return "⚠️ Usage: /init <team_id>", nil
	}

	teams, err := userService.GetTeam(db, teamID)
	if err != nil {
		return "", err
	}
	if len(teams) == 0 {
		return fmt.Sprintf("❌ No team #%d.", teamID), nil
	}

	team := teams[0]
	if team.GroupID != "" {
		return fmt.Sprintf("❌ Already linked to %s.", team.GroupID), nil
	}

	if err := userService.BindGroup(db, team.UserID, strconv.FormatInt(chat.ID, 10)); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Linked team *%s* to this group.", team.TeamName), nil
}

func sendText(bot *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
