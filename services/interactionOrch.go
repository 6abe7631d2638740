package services

import (
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"cctGameBot/models"
	"cctGameBot/services/common"
	"cctGameBot/services/shopService"
	"cctGameBot/services/userService"
)

// HandleCallback routes a button press. Menu presses redraw the message in
// place; buy/use presses answer with a transient alert and leave the menu
// as it is.
func HandleCallback(bot *tgbotapi.BotAPI, update tgbotapi.Update, db *gorm.DB) {
	q := update.CallbackQuery
	// Telegram omits Message for callbacks older than 48 hours; there is no
	// menu left to redraw, so answer the press and stop.
	if q.Message == nil {
		answerAlert(bot, q.ID, "❌ Menu expired")
		return
	}
	chatID := q.Message.Chat.ID

	user, status := common.Authorize(db, q.From.ID, chatID)
	if status != common.StatusOK {
		answerAlert(bot, q.ID, "❌ Unauthorized")
		return
	}
	answer(bot, q.ID, "")

	cb, ok := ParseCallback(q.Data)
	if !ok {
		answerAlert(bot, q.ID, "❌ Not found")
		return
	}

	switch cb.Kind {
	case CallbackMenu:
		var text string
		var kb tgbotapi.InlineKeyboardMarkup
		switch cb.Menu {
		case "main":
			text, kb = MainMenu(user)
		case "shop":
			text, kb = ShopMenu()
		case "members":
			text, kb = MembersMenu(user)
		case "inventory":
			text, kb = InventoryMenu(user)
		case "leaderboard":
			entries, err := userService.ScanLeaderboard(db)
			if err != nil {
				common.SendError(bot, chatID, err, db)
				return
			}
			text, kb = LeaderboardMenu(entries)
		default:
			text, kb = StubMenu(cb.Menu)
		}
		smartEdit(bot, q, text, kb)

	case CallbackDetail:
		var text string
		var kb tgbotapi.InlineKeyboardMarkup
		var found bool
		if cb.Source == "shop" {
			text, kb, found = ShopDetail(cb.Item)
		} else {
			text, kb, found = InventoryDetail(user, cb.Item)
		}
		if !found {
			answerAlert(bot, q.ID, "❌ Item not found")
			return
		}
		smartEdit(bot, q, text, kb)

	case CallbackBuy:
		item := shopService.GetItem(cb.Item)
		if item == nil {
			answerAlert(bot, q.ID, "❌ Item not found")
			return
		}
		err := userService.BuyItem(db, user.UserID, item.CostGP, item.CostMoney, models.InventoryItem{
			Name:        item.Name,
			Description: item.Description,
		})
		switch {
		case err == nil:
			answerAlert(bot, q.ID, "✅ Bought!")
		case errors.Is(err, userService.ErrInsufficientFunds):
			answerAlert(bot, q.ID, "❌ Not enough resources.")
		default:
			log.Printf("Error buying %s for user %d: %v", cb.Item, user.UserID, err)
			answerAlert(bot, q.ID, "❌ Purchase failed.")
		}

	case CallbackUse:
		err := userService.UseItem(db, user.UserID, cb.Item)
		switch {
		case err == nil:
			answerAlert(bot, q.ID, "✅ Used!")
		case errors.Is(err, userService.ErrItemNotFound):
			answerAlert(bot, q.ID, "❌ Could not use.")
		default:
			log.Printf("Error using %s for user %d: %v", cb.Item, user.UserID, err)
			answerAlert(bot, q.ID, "❌ Could not use.")
		}
	}
}

// smartEdit redraws the menu by editing the pressed message in place. When
// the edit is rejected (message too old, deleted, or a no-op edit) it falls
// back to deleting the old message and sending a fresh one so the user
// never keeps a stale menu.
func smartEdit(bot *tgbotapi.BotAPI, q *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	chatID := q.Message.Chat.ID
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, q.Message.MessageID, text, kb)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := bot.Send(edit); err == nil {
		return
	}

	if _, err := bot.Request(tgbotapi.NewDeleteMessage(chatID, q.Message.MessageID)); err != nil {
		log.Printf("Error deleting stale menu: %v", err)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Error resending menu: %v", err)
	}
}

func answer(bot *tgbotapi.BotAPI, callbackID, text string) {
	if bot == nil {
		return
	}
	if _, err := bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("Error answering callback: %v", err)
	}
}

func answerAlert(bot *tgbotapi.BotAPI, callbackID, text string) {
	if bot == nil {
		return
	}
	if _, err := bot.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("Error answering callback: %v", err)
	}
}
