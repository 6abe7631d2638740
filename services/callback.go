package services

import "strings"

// CallbackKind tags the decoded form of a callback payload.
type CallbackKind int

const (
	CallbackUnknown CallbackKind = iota
	CallbackMenu
	CallbackDetail
	CallbackBuy
	CallbackUse
)

// Callback is the decoded form of a colon-delimited callback payload
// (`menu:<submenu>`, `detail:<source>:<name>`, `buy:<name>`,
// `inv_use:<name>`).
type Callback struct {
	Kind   CallbackKind
	Menu   string // CallbackMenu
	Source string // CallbackDetail: "shop" or "inventory"
	Item   string // CallbackDetail, CallbackBuy, CallbackUse
}

var knownMenus = map[string]bool{
	"main":        true,
	"shop":        true,
	"members":     true,
	"locations":   true,
	"attack":      true,
	"inventory":   true,
	"leaderboard": true,
}

// ParseCallback decodes a callback payload. It fails closed: unknown tags,
// unknown submenus or a wrong token count return ok=false and the caller
// treats the press as "not found".
func ParseCallback(data string) (Callback, bool) {
	parts := strings.Split(data, ":")

	switch parts[0] {
	case "menu":
		if len(parts) != 2 || !knownMenus[parts[1]] {
			return Callback{}, false
		}
		return Callback{Kind: CallbackMenu, Menu: parts[1]}, true
	case "detail":
		if len(parts) != 3 || (parts[1] != "shop" && parts[1] != "inventory") || parts[2] == "" {
			return Callback{}, false
		}
		return Callback{Kind: CallbackDetail, Source: parts[1], Item: parts[2]}, true
	case "buy":
		if len(parts) != 2 || parts[1] == "" {
			return Callback{}, false
		}
		return Callback{Kind: CallbackBuy, Item: parts[1]}, true
	case "inv_use":
		if len(parts) != 2 || parts[1] == "" {
			return Callback{}, false
		}
		return Callback{Kind: CallbackUse, Item: parts[1]}, true
	}
	return Callback{}, false
}
