package engine

import (
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/event"
)

// EntitySnapshot is one entity's presentation view. Coordinates are floats
// for the renderer's convenience; the simulation never reads these back.
type EntitySnapshot struct {
	Entity     core.Entity
	X, Y       float64
	VelX, VelY float64
	Glyph      rune
	Faction    core.Faction

	HasHealth bool
	Health    float64
	MaxHealth float64

	Boss       bool
	Projectile bool
}

// HUDSnapshot is the session state the client draws around the arena.
type HUDSnapshot struct {
	Wave       int
	Currency   int64
	Score      int64
	Phase      core.SessionPhase
	BossActive bool
	Paused     bool

	CooldownFrac float64
	ChargeFrac   float64

	PlayerHealth float64
	PlayerMax    float64

	ShopOpen    bool
	ShowDetails bool
}

// Snapshot is the immutable per-tick view published for presentation.
// A render thread may only read it; it never touches live stores. Events
// carry the combat trigger side channel accumulated since the last publish.
type Snapshot struct {
	Tick     uint64
	Entities []EntitySnapshot
	HUD      HUDSnapshot
	Events   []event.GameEvent
}
