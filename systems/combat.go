package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/physics"
	"github.com/ashenfell/brawlarc/vmath"
)

// CombatSystem starts player swings and runs the hitbox-vs-hurtbox overlap
// pass. Overlap never applies damage directly: hits are deduplicated per
// (attack instance, target) and queued on the damage batch for the resolve
// pass at the end of the step.
type CombatSystem struct {
	world   *engine.World
	time    *engine.TimeResource
	input   *engine.InputResource
	session *engine.SessionResource
	batch   *DamageBatch

	transforms  *engine.Store[component.TransformComponent]
	combatants  *engine.Store[component.CombatantComponent]
	buffs       *engine.Store[component.BuffComponent]
	hitboxes    *engine.Store[component.HitboxComponent]
	hurtboxes   *engine.Store[component.HurtboxComponent]
	factions    *engine.Store[component.FactionComponent]
	hitMemories *engine.Store[component.HitMemoryComponent]
	projectiles *engine.Store[component.ProjectileComponent]
	deaths      *engine.Store[component.DeathComponent]
}

func NewCombatSystem(world *engine.World) engine.System {
	return &CombatSystem{
		world:       world,
		time:        engine.MustGetResource[*engine.TimeResource](world.Resources),
		input:       engine.MustGetResource[*engine.InputResource](world.Resources),
		session:     engine.MustGetResource[*engine.SessionResource](world.Resources),
		batch:       engine.MustGetResource[*DamageBatch](world.Resources),
		transforms:  world.Components.Transforms,
		combatants:  world.Components.Combatants,
		buffs:       world.Components.Buffs,
		hitboxes:    world.Components.Hitboxes,
		hurtboxes:   world.Components.Hurtboxes,
		factions:    world.Components.Factions,
		hitMemories: world.Components.HitMemories,
		projectiles: world.Components.Projectiles,
		deaths:      world.Components.Deaths,
	}
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) Update() {
	s.tickSwingCooldowns()
	s.startPlayerSwing()
	s.overlapPass()
}

func (s *CombatSystem) tickSwingCooldowns() {
	for _, e := range s.combatants.All() {
		s.combatants.Update(e, func(c *component.CombatantComponent) {
			if c.SwingCooldown > 0 {
				c.SwingCooldown--
			}
		})
	}
}

func (s *CombatSystem) startPlayerSwing() {
	if s.session.Phase != core.PhaseFighting {
		return
	}
	if !s.input.Light && !s.input.Heavy {
		return
	}
	player := s.session.Player
	if !s.world.Alive(player) {
		return
	}
	cb, ok := s.combatants.Get(player)
	if !ok || cb.SwingCooldown > 0 {
		return
	}

	// Heavy wins when both arrive in the same step
	damage := parameter.LightAttackDamage
	reach := parameter.LightAttackReach
	shape := component.Rect(parameter.LightAttackHalfW, parameter.LightAttackHalfH)
	kind := component.HitLight
	active := uint32(parameter.LightAttackActive)
	cadence := uint32(parameter.AttackCadence)
	if s.input.Heavy {
		damage = parameter.HeavyAttackDamage
		reach = parameter.HeavyAttackReach
		shape = component.Rect(parameter.HeavyAttackHalfW, parameter.HeavyAttackHalfH)
		kind = component.HitHeavy
		active = uint32(parameter.HeavyAttackActive)
		cadence = uint32(parameter.HeavyAttackCadence)
	}

	if b, ok := s.buffs.Get(player); ok {
		damage = b.Value(component.StatDamage, damage)
	}

	offX := vmath.Mul(cb.FacingX, parameter.PlayerRadius+reach)
	offY := vmath.Mul(cb.FacingY, parameter.PlayerRadius+reach)
	spawnMeleeHitbox(s.world, player, shape, offX, offY, damage, kind, active, s.time.Tick)

	s.combatants.Update(player, func(c *component.CombatantComponent) {
		c.SwingCooldown = cadence
	})
}

// overlapPass tests every active hitbox against every opposing hurtbox.
// Both stores iterate in slot order; batch contents are reproducible.
func (s *CombatSystem) overlapPass() {
	tick := s.time.Tick
	targets := s.hurtboxes.All()

	for _, hbEntity := range s.hitboxes.All() {
		hb, ok := s.hitboxes.Get(hbEntity)
		if !ok || !hb.ActiveAt(tick) {
			continue
		}
		hbTf, ok := s.transforms.Get(hbEntity)
		if !ok {
			continue
		}
		hbFaction, ok := s.factions.Get(hbEntity)
		if !ok {
			continue
		}

		for _, target := range targets {
			if target == hb.Owner || s.deaths.Has(target) {
				continue
			}
			tFaction, ok := s.factions.Get(target)
			if !ok || !hbFaction.Faction.Opposes(tFaction.Faction) {
				continue
			}
			if mem, ok := s.hitMemories.Get(target); ok && mem.Registered(hb.InstanceID) {
				continue
			}

			hurt, _ := s.hurtboxes.Get(target)
			tTf, ok := s.transforms.Get(target)
			if !ok {
				continue
			}
			_, hit := physics.Overlap(
				hbTf.PosX, hbTf.PosY, hb.Shape,
				tTf.PosX+hurt.OffsetX, tTf.PosY+hurt.OffsetY, hurt.Shape,
			)
			if !hit {
				continue
			}

			s.registerHit(target, hb.InstanceID, hb.ActiveUntil)
			s.batch.Append(DamageEvent{
				Attacker: hb.Owner,
				Target:   target,
				Amount:   hb.Damage,
				Kind:     hb.Kind,
				Instance: hb.InstanceID,
				X:        tTf.PosX,
				Y:        tTf.PosY,
			})

			// A projectile spends itself on its first landed hit
			if s.projectiles.Has(hbEntity) {
				s.world.DestroyEntity(hbEntity)
				break
			}
		}
	}
}

func (s *CombatSystem) registerHit(target core.Entity, instance, activeUntil uint64) {
	expire := activeUntil + parameter.HitMemoryGrace
	if !s.hitMemories.Update(target, func(m *component.HitMemoryComponent) {
		m.Register(instance, expire)
	}) {
		mem := component.HitMemoryComponent{}
		mem.Register(instance, expire)
		s.hitMemories.Add(target, mem)
	}
}
