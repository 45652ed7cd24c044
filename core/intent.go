package core

// IntentKind identifies one player input intent. Intents are queued by the
// presentation layer and drained by the simulation once per step, in arrival
// order.
type IntentKind uint8

const (
	IntentMove IntentKind = iota
	IntentLightAttack
	IntentHeavyAttack
	IntentSpecialAttack
	IntentActivateAbility
	IntentToggleShop
	IntentBuyUpgrade
	IntentTogglePause
	IntentConfirmSelection
	IntentToggleDetails
)

// Intent is one queued input. DirX/DirY carry the Q32.32 movement direction
// for IntentMove; Slot carries the catalog index for IntentBuyUpgrade.
type Intent struct {
	Kind IntentKind
	DirX int64
	DirY int64
	Slot int
}
