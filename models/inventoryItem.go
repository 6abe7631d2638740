package models

// InventoryItem is one entry of a user's ordered inventory. Insertion order
// is the inventory order, so the auto id doubles as the sort key.
type InventoryItem struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	UserID      int64  `gorm:"index:inv_user_name_idx; not null" json:"-"`
	Name        string `gorm:"index:inv_user_name_idx; size:128; not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}
