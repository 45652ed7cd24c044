package parameter

import "github.com/ashenfell/brawlarc/vmath"

// Melee attacks
var (
	LightAttackDamage = vmath.FromInt(5)
	HeavyAttackDamage = vmath.FromInt(12)

	// Hitbox reach from the attacker center along facing, and half extents
	LightAttackReach = vmath.FromFloat(1.6)
	HeavyAttackReach = vmath.FromFloat(2.0)
	LightAttackHalfW = vmath.FromFloat(1.2)
	LightAttackHalfH = vmath.FromFloat(0.8)
	HeavyAttackHalfW = vmath.FromFloat(1.6)
	HeavyAttackHalfH = vmath.FromFloat(1.0)
)

// Attack timing in ticks
const (
	// LightAttackActive and HeavyAttackActive are hitbox active windows
	LightAttackActive = 6
	HeavyAttackActive = 10

	// AttackCadence gates consecutive attacks (0.25 s at 120 Hz)
	AttackCadence = 30

	// HeavyAttackCadence is the heavier swing recovery
	HeavyAttackCadence = 54

	// HitMemoryGrace keeps dedup entries past the hitbox window before the
	// cull pass drops them
	HitMemoryGrace = 30
)

// Charge meter (ability resource)
var (
	ChargeMax = vmath.FromInt(100)

	// ChargeGainRatio converts damage dealt into charge (meter gain)
	ChargeGainRatio = vmath.FromFloat(0.5)

	// SpecialChargeCost gates non-ultimate abilities
	SpecialChargeCost = vmath.FromInt(30)
)

// Projectiles
var (
	ProjectileSpeed  = vmath.FromInt(36)
	ProjectileRadius = vmath.FromFloat(0.5)
)

const (
	// ProjectileLifetime is the flight budget in ticks
	ProjectileLifetime = 180
)
