package parameter

import "github.com/ashenfell/brawlarc/vmath"

// Enemy movement and attack behavior
var (
	EnemyBaseSpeed  = vmath.FromInt(9)
	EnemyMeleeRange = vmath.FromFloat(1.8)
	EnemyBaseDamage = vmath.FromInt(5)
	EnemyRadius     = vmath.FromFloat(0.9)
	BossRadius      = vmath.FromFloat(1.8)
	BossBaseHealth  = vmath.FromInt(300)
	BossSpeedScale  = vmath.FromFloat(0.7)
	BossDamageScale = vmath.FromFloat(2.0)
	EnemySeparation = vmath.FromFloat(1.6)
	SpawnEdgeMargin = vmath.FromInt(3)

	// EnemySwingRadius is the enemy melee hitbox radius
	EnemySwingRadius = vmath.FromFloat(1.0)
)

const (
	// EnemyReactionMin/Max bound the per-enemy reaction delay in ticks
	EnemyReactionMin = 24
	EnemyReactionMax = 60

	// EnemySwingCadence is ticks between enemy melee swings
	EnemySwingCadence = 90

	// EnemySwingActive is the enemy hitbox active window in ticks
	EnemySwingActive = 8

	// SpawnInterval is ticks between spawns while budget remains (2 s)
	SpawnInterval = 240

	// BossWaveInterval triggers a boss encounter every Nth wave
	BossWaveInterval = 5

	// BossPhases is the number of escalation phases per boss
	BossPhases = 3
)
