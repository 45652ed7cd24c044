package component

// CombatantComponent holds melee state shared by players and enemies:
// facing, swing recovery and baseline stats that buffs multiply.
type CombatantComponent struct {
	// FacingX/FacingY is the last nonzero movement direction (unit, Q32.32)
	FacingX, FacingY int64

	// SwingCooldown is ticks until the next attack may start
	SwingCooldown uint32

	BaseDamage int64
	BaseSpeed  int64

	// Glyph identifies the unit to the presentation layer
	Glyph rune
}
