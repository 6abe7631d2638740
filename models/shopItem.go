package models

// ItemEffect is the stat change applied when an item is used. Stat is a
// column of the users table; only the constants below are ever passed to a
// query builder.
type ItemEffect struct {
	Stat  string
	Delta int
}

// Stat columns an item effect may target.
const (
	StatAttackPower = "attack_power"
	StatSteps       = "steps"
)

// ShopItem is a purchasable catalog entry. The catalog is defined at startup
// and never mutated.
type ShopItem struct {
	Name        string
	Description string
	CostGP      int
	CostMoney   int
	Effect      *ItemEffect
}
