package engine

import (
	"github.com/ashenfell/brawlarc/component"
)

// ComponentStore holds the typed stores for every component kind. Systems
// cache the pointers they need at construction; no runtime type lookups.
type ComponentStore struct {
	// Spatial
	Transforms *Store[component.TransformComponent]
	Colliders  *Store[component.ColliderComponent]

	// Combat
	Healths     *Store[component.HealthComponent]
	Factions    *Store[component.FactionComponent]
	Combatants  *Store[component.CombatantComponent]
	Hitboxes    *Store[component.HitboxComponent]
	Hurtboxes   *Store[component.HurtboxComponent]
	HitMemories *Store[component.HitMemoryComponent]
	Projectiles *Store[component.ProjectileComponent]
	Burns       *Store[component.BurnComponent]

	// Character
	Abilities *Store[component.AbilityComponent]
	Buffs     *Store[component.BuffComponent]
	AIs       *Store[component.AIComponent]
	Bosses    *Store[component.BossComponent]

	// Lifecycle
	Lifetimes *Store[component.LifetimeComponent]
	Deaths    *Store[component.DeathComponent]
}

func newComponentStore() (ComponentStore, []storeEraser) {
	cs := ComponentStore{
		Transforms:  NewStore[component.TransformComponent](),
		Colliders:   NewStore[component.ColliderComponent](),
		Healths:     NewStore[component.HealthComponent](),
		Factions:    NewStore[component.FactionComponent](),
		Combatants:  NewStore[component.CombatantComponent](),
		Hitboxes:    NewStore[component.HitboxComponent](),
		Hurtboxes:   NewStore[component.HurtboxComponent](),
		HitMemories: NewStore[component.HitMemoryComponent](),
		Projectiles: NewStore[component.ProjectileComponent](),
		Burns:       NewStore[component.BurnComponent](),
		Abilities:   NewStore[component.AbilityComponent](),
		Buffs:       NewStore[component.BuffComponent](),
		AIs:         NewStore[component.AIComponent](),
		Bosses:      NewStore[component.BossComponent](),
		Lifetimes:   NewStore[component.LifetimeComponent](),
		Deaths:      NewStore[component.DeathComponent](),
	}
	erasers := []storeEraser{
		cs.Transforms, cs.Colliders,
		cs.Healths, cs.Factions, cs.Combatants,
		cs.Hitboxes, cs.Hurtboxes, cs.HitMemories,
		cs.Projectiles, cs.Burns,
		cs.Abilities, cs.Buffs, cs.AIs, cs.Bosses,
		cs.Lifetimes, cs.Deaths,
	}
	return cs, erasers
}
