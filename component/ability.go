package component

// AbilityKind is the tagged variant selecting how an ability resolves.
// Characters differ only in kind and numeric parameters, so resolution is a
// flat exhaustive switch rather than a type hierarchy.
type AbilityKind uint8

const (
	// AbilitySplash is an instant AOE damage burst around the caster
	AbilitySplash AbilityKind = iota
	// AbilityBuffBundle applies a damage multiplier and a max-health bonus
	AbilityBuffBundle
	// AbilitySpeedBuff applies speed and a moderate damage multiplier
	AbilitySpeedBuff
	// AbilityDamageBuff applies a damage multiplier only
	AbilityDamageBuff
	// AbilityBurn applies damage-over-time to enemies near the caster
	AbilityBurn
	// AbilityProjectile throws a single-hit projectile along facing
	AbilityProjectile
	// AbilityUltimate is the long-cooldown combined buff
	AbilityUltimate
)

// AbilityPhase is the per-instance state machine position.
type AbilityPhase uint8

const (
	AbilityReady AbilityPhase = iota
	AbilityActivating
	AbilityOnCooldown
)

// AbilityParams are the numeric knobs for one ability, resolved from the
// character table at spawn so the component stays self-contained.
type AbilityParams struct {
	Kind AbilityKind

	// Buff magnitudes (Q32.32); zero means unused
	DamageMult  int64
	SpeedMult   int64
	HealthBonus int64

	// Splash
	SplashDamage int64
	SplashRadius int64

	// Burn
	BurnDPS      int64
	BurnDuration uint32 // ticks
	BurnRadius   int64

	// Projectile
	ProjectileDamage int64

	DurationTicks uint32
	CooldownTicks uint32
	ChargeCost    int64
}

// AbilityComponent is one character's special-move state machine.
// Cooldowns count simulation ticks, never wall-clock time.
type AbilityComponent struct {
	Params AbilityParams

	Phase        AbilityPhase
	CooldownLeft uint32
	ActiveLeft   uint32
	Charge       int64
	LastInstance uint64
}
