package shopService

import (
	"cctGameBot/models"
)

// itemsByName holds the shop catalog keyed by item name. Populated once at
// init; read-only afterwards.
var itemsByName map[string]*models.ShopItem

// itemOrder keeps the catalog presentation order stable across renders.
var itemOrder []string

func init() {
	catalog := []models.ShopItem{
		{
			Name:        "Pistol",
			Description: "Grants +1 attack power.",
			CostGP:      1,
			CostMoney:   3,
			Effect:      &models.ItemEffect{Stat: models.StatAttackPower, Delta: 1},
		},
		{
			Name:        "Car",
			Description: "Grants +10 steps.",
			CostGP:      0,
			CostMoney:   5,
			Effect:      &models.ItemEffect{Stat: models.StatSteps, Delta: 10},
		},
	}

	itemsByName = make(map[string]*models.ShopItem, len(catalog))
	itemOrder = make([]string, 0, len(catalog))
	for i := range catalog {
		itemsByName[catalog[i].Name] = &catalog[i]
		itemOrder = append(itemOrder, catalog[i].Name)
	}
}

// GetItem returns the catalog entry for name, or nil if the shop does not
// carry it.
func GetItem(name string) *models.ShopItem {
	return itemsByName[name]
}

// ItemNames returns the catalog names in presentation order.
func ItemNames() []string {
	names := make([]string, len(itemOrder))
	copy(names, itemOrder)
	return names
}
