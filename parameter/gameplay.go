package parameter

import "github.com/ashenfell/brawlarc/vmath"

// Arena dimensions in Q32.32 world units
var (
	ArenaWidth  = vmath.FromInt(80)
	ArenaHeight = vmath.FromInt(44)
)

// Player baseline
var (
	PlayerMaxHealth = vmath.FromInt(100)
	PlayerBaseSpeed = vmath.FromInt(18) // units per second
	PlayerRadius    = vmath.FromFloat(0.9)
)

// Rewards
var (
	// KillRewardPerWave scales the per-kill currency grant by wave number
	KillRewardPerWave int64 = 10

	// WaveClearBase and WaveClearPerWave form the wave completion bonus
	WaveClearBase    int64 = 40
	WaveClearPerWave int64 = 5

	// BossKillRewardScale multiplies the kill reward for bosses
	BossKillRewardScale int64 = 5
)

// WaveClearHeal restores this much health when a wave completes
var WaveClearHeal = vmath.FromInt(20)
