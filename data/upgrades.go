package data

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/vmath"
)

// Upgrade is one shop catalog entry. Purchases append a permanent
// BuffModifier; Cap bounds how many copies a session may hold.
type Upgrade struct {
	Name string
	Cost int64

	Stat component.Stat
	Mult int64 // Q32.32, zero = no multiplicative part
	Add  int64 // Q32.32

	Cap int
}

// Upgrades is the shop catalog, indexed by purchase slot. Each entry
// targets a distinct stat, so per-upgrade caps count modifiers per
// (upgrade source, stat).
var Upgrades = []Upgrade{
	{
		Name: "Attack Boost",
		Cost: 150,
		Stat: component.StatDamage,
		Mult: vmath.FromFloat(1.15),
		Cap:  5,
	},
	{
		Name: "Health Boost",
		Cost: 120,
		Stat: component.StatMaxHealth,
		Add:  vmath.FromInt(20),
		Cap:  5,
	},
	{
		Name: "Speed Boost",
		Cost: 100,
		Stat: component.StatSpeed,
		Mult: vmath.FromFloat(1.10),
		Cap:  5,
	},
	{
		Name: "Cooldown Tuning",
		Cost: 200,
		Stat: component.StatCooldown,
		Mult: vmath.FromFloat(0.8),
		Cap:  3,
	},
	{
		Name: "Armor Plating",
		Cost: 160,
		Stat: component.StatArmor,
		Add:  vmath.FromFloat(0.15),
		Cap:  3,
	},
	{
		Name: "Life Steal",
		Cost: 220,
		Stat: component.StatLifeSteal,
		Add:  vmath.FromFloat(0.10),
		Cap:  2,
	},
}

// ValidSlot reports whether a purchase slot indexes the catalog.
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < len(Upgrades)
}
