package userService

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"cctGameBot/models"
	"cctGameBot/services/shopService"
)

// ErrInsufficientFunds is the expected outcome of a purchase whose balance
// guard did not hold. It is not a store failure.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrItemNotFound is returned when a named item is not in the inventory.
var ErrItemNotFound = errors.New("item not found")

type LeaderboardEntry struct {
	Team   string        `json:"team"`
	Points models.Number `json:"points"`
}

// GetUser returns the user record for id with its inventory preloaded.
// A missing record is a valid outcome and returns (nil, nil).
func GetUser(db *gorm.DB, id int64) (*models.User, error) {
	var user models.User
	result := db.Preload("Inventory", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("inventory_items.id")
	}).First(&user, "user_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetTeam returns every user record carrying teamID, oldest id first.
func GetTeam(db *gorm.DB, teamID int64) ([]models.User, error) {
	var users []models.User
	result := db.Where("team_id = ?", teamID).Order("user_id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// BindGroup binds a chat to the user record. This is the only unconditional
// field update in the system.
func BindGroup(db *gorm.DB, id int64, groupID string) error {
	result := db.Model(&models.User{}).Where("user_id = ?", id).Update("group_id", groupID)
	return result.Error
}

// BuyItem debits both balances and appends item to the inventory as one
// atomic unit. The debit is a single guarded UPDATE with no preceding read:
// when the guard does not hold the statement matches zero rows and the
// purchase reports ErrInsufficientFunds, so two racing purchases against a
// balance sufficient for one can never both succeed.
func BuyItem(db *gorm.DB, id int64, costGP, costMoney int, item models.InventoryItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("user_id = ? AND gunpowder >= ? AND money >= ?", id, costGP, costMoney).
			Updates(map[string]interface{}{
				"gunpowder": gorm.Expr("gunpowder - ?", costGP),
				"money":     gorm.Expr("money - ?", costMoney),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		item.UserID = id
		return tx.Create(&item).Error
	})
}

// UseItem removes one inventory entry named itemName (oldest first) and
// applies the item's stat effect to the user row in the same transaction.
// No matching entry rolls back with ErrItemNotFound and leaves the record
// untouched. Items without a registered effect are consumed as-is.
func UseItem(db *gorm.DB, id int64, itemName string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND name = ?", id, itemName).
			Order("id").Limit(1).Delete(&models.InventoryItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}

		item := shopService.GetItem(itemName)
		if item == nil || item.Effect == nil {
			return nil
		}
		return tx.Model(&models.User{}).Where("user_id = ?", id).
			Update(item.Effect.Stat, gorm.Expr(item.Effect.Stat+" + ?", item.Effect.Delta)).Error
	})
}

// ScanLeaderboard scans every user record, sums win points per team name and
// returns the tally sorted by points descending, ties by team name
// ascending. Records without a team name count toward "Unknown".
func ScanLeaderboard(db *gorm.DB) ([]LeaderboardEntry, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("error scanning users: %w", err)
	}

	tally := make(map[string]models.Number)
	for _, user := range users {
		name := user.TeamName
		if name == "" {
			name = "Unknown"
		}
		tally[name] += user.WinPoints
	}

	entries := make([]LeaderboardEntry, 0, len(tally))
	for team, points := range tally {
		entries = append(entries, LeaderboardEntry{Team: team, Points: points})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Team < entries[j].Team
	})
	return entries, nil
}
