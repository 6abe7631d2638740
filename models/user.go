package models

// Resources holds the spendable balances. Both stay non-negative because the
// only code path that decrements them is the guarded update in BuyItem.
type Resources struct {
	Gunpowder int `gorm:"column:gunpowder; default:0" json:"gunpowder"`
	Money     int `gorm:"column:money; default:0" json:"money"`
}

type User struct {
	UserID      int64           `gorm:"primaryKey; column:user_id; autoIncrement:false" json:"user_id"`
	GroupID     string          `gorm:"size:64" json:"group_id"`
	Username    string          `gorm:"size:128" json:"username"`
	TeamID      int64           `gorm:"index:team_id_idx" json:"team_id"`
	TeamName    string          `gorm:"size:128" json:"team_name"`
	WinPoints   Number          `json:"win_points"`
	Resources   Resources       `gorm:"embedded" json:"resources"`
	AttackPower int             `json:"attack_power"`
	Steps       int             `json:"steps"`
	Members     []string        `gorm:"serializer:json; type:json" json:"members"`
	Inventory   []InventoryItem `gorm:"foreignKey:UserID; references:UserID" json:"inventory"`
}
