package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/data"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// SpawnPlayer creates the player entity from a roster slot and records it
// in the session. Returns NullEntity when the slot budget is exhausted.
func SpawnPlayer(world *engine.World, charIndex int) core.Entity {
	e, ok := world.CreateEntity()
	if !ok {
		return core.NullEntity
	}
	session := engine.MustGetResource[*engine.SessionResource](world.Resources)
	arena := engine.MustGetResource[*engine.ArenaResource](world.Resources)
	ch := data.CharacterByIndex(charIndex)

	cs := &world.Components
	cs.Transforms.Add(e, component.TransformComponent{
		PosX: arena.Width >> 1,
		PosY: arena.Height >> 1,
	})
	cs.Colliders.Add(e, component.ColliderComponent{
		Shape: component.Circle(parameter.PlayerRadius),
		Solid: true,
	})
	cs.Hurtboxes.Add(e, component.HurtboxComponent{
		Shape: component.Circle(parameter.PlayerRadius),
	})
	cs.Healths.Add(e, component.HealthComponent{Current: ch.MaxHealth, Max: ch.MaxHealth})
	cs.Factions.Add(e, component.FactionComponent{Faction: core.FactionPlayer})
	cs.Combatants.Add(e, component.CombatantComponent{
		FacingX:    vmath.Scale,
		BaseDamage: ch.BaseDamage,
		BaseSpeed:  ch.BaseSpeed,
		Glyph:      ch.Glyph,
	})
	cs.Abilities.Add(e, component.AbilityComponent{Params: ch.Ability})
	cs.Buffs.Add(e, component.BuffComponent{})
	cs.HitMemories.Add(e, component.HitMemoryComponent{})

	session.Player = e
	session.PlayerChar = charIndex
	return e
}

// SpawnEnemy creates one hostile unit from an archetype, scaled to the
// wave. Spawn failure from slot exhaustion returns NullEntity; callers
// record the drop and move on.
func SpawnEnemy(world *engine.World, archIndex, wave int, x, y int64) core.Entity {
	e, ok := world.CreateEntity()
	if !ok {
		return core.NullEntity
	}
	session := engine.MustGetResource[*engine.SessionResource](world.Resources)
	arch := data.Archetypes[archIndex]

	health := vmath.Mul(arch.Health, data.HealthScale(wave))
	cs := &world.Components
	cs.Transforms.Add(e, component.TransformComponent{PosX: x, PosY: y})
	cs.Colliders.Add(e, component.ColliderComponent{
		Shape: component.Circle(parameter.EnemyRadius),
		Solid: true,
	})
	cs.Hurtboxes.Add(e, component.HurtboxComponent{
		Shape: component.Circle(parameter.EnemyRadius),
	})
	cs.Healths.Add(e, component.HealthComponent{Current: health, Max: health})
	cs.Factions.Add(e, component.FactionComponent{Faction: core.FactionEnemy})
	cs.Combatants.Add(e, component.CombatantComponent{
		FacingX:    -vmath.Scale,
		BaseDamage: arch.Damage,
		BaseSpeed:  arch.Speed,
		Glyph:      arch.Glyph,
	})
	reaction := parameter.EnemyReactionMin +
		session.Rng.Intn(parameter.EnemyReactionMax-parameter.EnemyReactionMin+1)
	cs.AIs.Add(e, component.AIComponent{
		Target:       session.Player,
		ReactionLeft: uint32(reaction),
		Difficulty:   data.DamageScale(wave),
	})
	cs.HitMemories.Add(e, component.HitMemoryComponent{})
	return e
}

// SpawnBoss creates the boss encounter unit for a boss wave.
func SpawnBoss(world *engine.World, wave int, x, y int64) core.Entity {
	e, ok := world.CreateEntity()
	if !ok {
		return core.NullEntity
	}
	session := engine.MustGetResource[*engine.SessionResource](world.Resources)

	health := vmath.Mul(parameter.BossBaseHealth, data.HealthScale(wave))
	cs := &world.Components
	cs.Transforms.Add(e, component.TransformComponent{PosX: x, PosY: y})
	cs.Colliders.Add(e, component.ColliderComponent{
		Shape: component.Circle(parameter.BossRadius),
		Solid: true,
	})
	cs.Hurtboxes.Add(e, component.HurtboxComponent{
		Shape: component.Circle(parameter.BossRadius),
	})
	cs.Healths.Add(e, component.HealthComponent{Current: health, Max: health})
	cs.Factions.Add(e, component.FactionComponent{Faction: core.FactionEnemy})
	cs.Combatants.Add(e, component.CombatantComponent{
		FacingX:    -vmath.Scale,
		BaseDamage: vmath.Mul(parameter.EnemyBaseDamage, parameter.BossDamageScale),
		BaseSpeed:  vmath.Mul(parameter.EnemyBaseSpeed, parameter.BossSpeedScale),
		Glyph:      '@',
	})
	cs.AIs.Add(e, component.AIComponent{
		Target:       session.Player,
		ReactionLeft: parameter.EnemyReactionMin,
		Difficulty:   data.DamageScale(wave),
	})
	cs.Bosses.Add(e, component.BossComponent{
		Phase:       1,
		PhaseCount:  parameter.BossPhases,
		DamageScale: vmath.Scale,
	})
	cs.HitMemories.Add(e, component.HitMemoryComponent{})
	return e
}

// SpawnProjectile launches a single-hit projectile along a unit direction.
// The projectile carries its own hitbox; the first landed hit destroys it.
func SpawnProjectile(world *engine.World, owner core.Entity, x, y, dirX, dirY, damage int64, tick uint64) core.Entity {
	e, ok := world.CreateEntity()
	if !ok {
		return core.NullEntity
	}
	session := engine.MustGetResource[*engine.SessionResource](world.Resources)

	cs := &world.Components
	cs.Transforms.Add(e, component.TransformComponent{
		PosX: x,
		PosY: y,
		VelX: vmath.Mul(dirX, parameter.ProjectileSpeed),
		VelY: vmath.Mul(dirY, parameter.ProjectileSpeed),
	})
	cs.Projectiles.Add(e, component.ProjectileComponent{Owner: owner})
	cs.Factions.Add(e, component.FactionComponent{Faction: core.FactionPlayer})
	cs.Hitboxes.Add(e, component.HitboxComponent{
		Shape:       component.Circle(parameter.ProjectileRadius),
		Owner:       owner,
		InstanceID:  session.NextInstance(),
		Damage:      damage,
		Kind:        component.HitProjectile,
		ActiveFrom:  tick,
		ActiveUntil: tick + parameter.ProjectileLifetime,
	})
	cs.Lifetimes.Add(e, component.LifetimeComponent{TicksLeft: parameter.ProjectileLifetime})
	return e
}

// spawnMeleeHitbox creates a short-lived attack shape anchored to its
// owner. The instance id is fresh per swing, so a new swing can hit targets
// the previous one already tagged.
func spawnMeleeHitbox(world *engine.World, owner core.Entity, shape component.Shape,
	offX, offY, damage int64, kind component.HitKind, activeTicks uint32, tick uint64) core.Entity {
	e, ok := world.CreateEntity()
	if !ok {
		return core.NullEntity
	}
	session := engine.MustGetResource[*engine.SessionResource](world.Resources)
	faction := core.FactionEnemy
	if f, ok := world.Components.Factions.Get(owner); ok {
		faction = f.Faction
	}
	tf, _ := world.Components.Transforms.Get(owner)

	cs := &world.Components
	cs.Transforms.Add(e, component.TransformComponent{
		PosX: tf.PosX + offX,
		PosY: tf.PosY + offY,
	})
	cs.Factions.Add(e, component.FactionComponent{Faction: faction})
	cs.Hitboxes.Add(e, component.HitboxComponent{
		Shape:       shape,
		OffsetX:     offX,
		OffsetY:     offY,
		Owner:       owner,
		InstanceID:  session.NextInstance(),
		Damage:      damage,
		Kind:        kind,
		ActiveFrom:  tick,
		ActiveUntil: tick + uint64(activeTicks),
		FollowOwner: true,
	})
	cs.Lifetimes.Add(e, component.LifetimeComponent{TicksLeft: activeTicks})
	return e
}
