package services

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cctGameBot/models"
	"cctGameBot/services/shopService"
	"cctGameBot/services/userService"
)

// Menu rendering is pure: the same user state always produces the same text
// and keyboard, so every transition can simply redraw.

func backRow(target string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Back", "menu:"+target),
	)
}

func MainMenu(user *models.User) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🏠 Main Menu\nWelcome, *%s*!", user.Username)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Shop", "menu:shop"),
			tgbotapi.NewInlineKeyboardButtonData("👥 Members", "menu:members"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗺️ Locations", "menu:locations"),
			tgbotapi.NewInlineKeyboardButtonData("⚔️ Attack", "menu:attack"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📦 Inventory", "menu:inventory"),
			tgbotapi.NewInlineKeyboardButtonData("🏆 Leaderboard", "menu:leaderboard"),
		),
	)
	return text, kb
}

func ShopMenu() (string, tgbotapi.InlineKeyboardMarkup) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range shopService.ItemNames() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, "detail:shop:"+name),
		))
	}
	rows = append(rows, backRow("main"))
	return "🛒 Shop:", tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func InventoryMenu(user *models.User) (string, tgbotapi.InlineKeyboardMarkup) {
	text := "📦 Your inventory:"
	if len(user.Inventory) == 0 {
		text += " empty."
	} else {
		names := make([]string, len(user.Inventory))
		for i, item := range user.Inventory {
			names[i] = item.Name
		}
		text += "\n" + strings.Join(names, "\n")
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range user.Inventory {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(item.Name, "detail:inventory:"+item.Name),
		))
	}
	rows = append(rows, backRow("main"))
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func MembersMenu(user *models.User) (string, tgbotapi.InlineKeyboardMarkup) {
	text := "No members."
	if len(user.Members) > 0 {
		text = "👥 Team Members:\n" + strings.Join(user.Members, "\n")
	}
	return text, tgbotapi.NewInlineKeyboardMarkup(backRow("main"))
}

func LeaderboardMenu(entries []userService.LeaderboardEntry) (string, tgbotapi.InlineKeyboardMarkup) {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%s — %.1f", entry.Team, float64(entry.Points))
	}
	text := "🏆 Leaderboard:\n" + strings.Join(lines, "\n")
	return text, tgbotapi.NewInlineKeyboardMarkup(backRow("main"))
}

// StubMenu renders the not-yet-built menus (locations, attack).
func StubMenu(menu string) (string, tgbotapi.InlineKeyboardMarkup) {
	emoji := "⚔️"
	if menu == "locations" {
		emoji = "🗺️"
	}
	title := strings.ToUpper(menu[:1]) + menu[1:]
	text := fmt.Sprintf("%s %s: (coming soon)", emoji, title)
	return text, tgbotapi.NewInlineKeyboardMarkup(backRow("main"))
}

// ShopDetail renders a shop item view. ok is false when the shop does not
// carry the item.
func ShopDetail(name string) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	item := shopService.GetItem(name)
	if item == nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}
	text := fmt.Sprintf("*%s*\n\n%s\nCost: %d gunpowder, %d money",
		item.Name, item.Description, item.CostGP, item.CostMoney)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Buy", "buy:"+name),
		),
		backRow("shop"),
	)
	return text, kb, true
}

// InventoryDetail renders an owned item view. ok is false when the item is
// not in the user's inventory.
func InventoryDetail(user *models.User, name string) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	var found *models.InventoryItem
	for i := range user.Inventory {
		if user.Inventory[i].Name == name {
			found = &user.Inventory[i]
			break
		}
	}
	if found == nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}
	text := fmt.Sprintf("*%s*\n\n%s", found.Name, found.Description)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛠️ Use", "inv_use:"+name),
		),
		backRow("inventory"),
	)
	return text, kb, true
}
