package data

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// Character is one playable fighter: baseline stats plus the special-move
// parameter block resolved at spawn.
type Character struct {
	Name  string
	Glyph rune

	MaxHealth  int64
	BaseSpeed  int64
	BaseDamage int64

	Ability component.AbilityParams
}

// Characters is the roster, indexed by selection slot. Durations and
// cooldowns are ticks at 120 Hz.
var Characters = []Character{
	{
		Name:       "Bas",
		Glyph:      'B',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:          component.AbilitySplash,
			SplashDamage:  vmath.FromInt(45),
			SplashRadius:  vmath.FromInt(6),
			CooldownTicks: 8 * parameter.TickRate,
			ChargeCost:    parameter.SpecialChargeCost,
		},
	},
	{
		Name:       "Berkay",
		Glyph:      'K',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:          component.AbilityBuffBundle,
			DamageMult:    vmath.FromFloat(2.2),
			HealthBonus:   vmath.FromInt(35),
			DurationTicks: 6 * parameter.TickRate,
			CooldownTicks: 12 * parameter.TickRate,
			ChargeCost:    parameter.SpecialChargeCost,
		},
	},
	{
		Name:       "Hadi",
		Glyph:      'H',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:          component.AbilitySpeedBuff,
			SpeedMult:     vmath.FromFloat(3.2),
			DamageMult:    vmath.FromFloat(1.5),
			DurationTicks: 5 * parameter.TickRate,
			CooldownTicks: 10 * parameter.TickRate,
			ChargeCost:    parameter.SpecialChargeCost,
		},
	},
	{
		Name:       "Umut",
		Glyph:      'U',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:          component.AbilityDamageBuff,
			DamageMult:    vmath.FromFloat(2.3),
			DurationTicks: 6 * parameter.TickRate,
			CooldownTicks: 10 * parameter.TickRate,
			ChargeCost:    parameter.SpecialChargeCost,
		},
	},
	{
		Name:       "Nitin",
		Glyph:      'N',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:          component.AbilityBurn,
			BurnDPS:       vmath.FromInt(8),
			BurnDuration:  6 * parameter.TickRate,
			BurnRadius:    vmath.FromInt(7),
			CooldownTicks: 9 * parameter.TickRate,
			ChargeCost:    parameter.SpecialChargeCost,
		},
	},
	{
		Name:       "Fufinho",
		Glyph:      'F',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:             component.AbilityProjectile,
			ProjectileDamage: vmath.FromInt(80),
			CooldownTicks:    7 * parameter.TickRate,
			ChargeCost:       parameter.SpecialChargeCost,
		},
	},
	{
		Name:       "Yigit Baba",
		Glyph:      'Y',
		MaxHealth:  parameter.PlayerMaxHealth,
		BaseSpeed:  parameter.PlayerBaseSpeed,
		BaseDamage: parameter.LightAttackDamage,
		Ability: component.AbilityParams{
			Kind:          component.AbilityUltimate,
			DamageMult:    vmath.FromInt(3),
			SpeedMult:     vmath.FromFloat(1.6),
			HealthBonus:   vmath.FromInt(30),
			DurationTicks: 10 * parameter.TickRate,
			CooldownTicks: 30 * parameter.TickRate,
			ChargeCost:    parameter.ChargeMax,
		},
	},
}

// CharacterByIndex returns the roster entry for a slot, falling back to the
// first fighter on an out-of-range index.
func CharacterByIndex(i int) Character {
	if i < 0 || i >= len(Characters) {
		return Characters[0]
	}
	return Characters[i]
}
