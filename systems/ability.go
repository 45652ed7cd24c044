package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// AbilitySystem drives the special-move state machine. Activation is
// all-or-nothing: the charge cost, the phase transition and every effect of
// the ability land in the same step or none of them do. Cooldowns count
// ticks; a paused session freezes them along with everything else.
type AbilitySystem struct {
	world   *engine.World
	time    *engine.TimeResource
	input   *engine.InputResource
	session *engine.SessionResource
	batch   *DamageBatch

	abilities  *engine.Store[component.AbilityComponent]
	buffs      *engine.Store[component.BuffComponent]
	burns      *engine.Store[component.BurnComponent]
	transforms *engine.Store[component.TransformComponent]
	combatants *engine.Store[component.CombatantComponent]
	factions   *engine.Store[component.FactionComponent]
	healths    *engine.Store[component.HealthComponent]
	hurtboxes  *engine.Store[component.HurtboxComponent]
	deaths     *engine.Store[component.DeathComponent]
}

func NewAbilitySystem(world *engine.World) engine.System {
	return &AbilitySystem{
		world:      world,
		time:       engine.MustGetResource[*engine.TimeResource](world.Resources),
		input:      engine.MustGetResource[*engine.InputResource](world.Resources),
		session:    engine.MustGetResource[*engine.SessionResource](world.Resources),
		batch:      engine.MustGetResource[*DamageBatch](world.Resources),
		abilities:  world.Components.Abilities,
		buffs:      world.Components.Buffs,
		burns:      world.Components.Burns,
		transforms: world.Components.Transforms,
		combatants: world.Components.Combatants,
		factions:   world.Components.Factions,
		healths:    world.Components.Healths,
		hurtboxes:  world.Components.Hurtboxes,
		deaths:     world.Components.Deaths,
	}
}

func (s *AbilitySystem) Priority() int {
	return parameter.PriorityAbility
}

func (s *AbilitySystem) Update() {
	for _, e := range s.abilities.All() {
		s.tickPhase(e)
	}

	if s.session.Phase != core.PhaseFighting {
		return
	}
	if !s.input.Special && !s.input.Ability {
		return
	}
	player := s.session.Player
	if !s.world.Alive(player) {
		return
	}
	s.tryActivate(player)
}

func (s *AbilitySystem) tickPhase(e core.Entity) {
	s.abilities.Update(e, func(ab *component.AbilityComponent) {
		switch ab.Phase {
		case component.AbilityActivating:
			if ab.ActiveLeft > 0 {
				ab.ActiveLeft--
			}
			if ab.ActiveLeft == 0 {
				ab.Phase = component.AbilityOnCooldown
				ab.CooldownLeft = s.cooldownFor(e, ab.Params.CooldownTicks)
			}
		case component.AbilityOnCooldown:
			if ab.CooldownLeft > 0 {
				ab.CooldownLeft--
			}
			if ab.CooldownLeft == 0 {
				ab.Phase = component.AbilityReady
			}
		}
	})
}

// cooldownFor applies the cooldown modifier stack to the base duration.
func (s *AbilitySystem) cooldownFor(e core.Entity, base uint32) uint32 {
	b, ok := s.buffs.Get(e)
	if !ok {
		return base
	}
	scaled := b.Value(component.StatCooldown, vmath.FromInt(int(base)))
	ticks := vmath.ToInt(scaled)
	if ticks < 1 {
		ticks = 1
	}
	return uint32(ticks)
}

func (s *AbilitySystem) tryActivate(caster core.Entity) {
	ab, ok := s.abilities.Get(caster)
	if !ok || ab.Phase != component.AbilityReady {
		return
	}
	if ab.Charge < ab.Params.ChargeCost {
		return
	}

	instance := s.session.NextInstance()
	s.applyEffect(caster, ab.Params, instance)

	s.abilities.Update(caster, func(a *component.AbilityComponent) {
		a.Charge -= a.Params.ChargeCost
		a.LastInstance = instance
		if a.Params.DurationTicks > 0 {
			a.Phase = component.AbilityActivating
			a.ActiveLeft = a.Params.DurationTicks
		} else {
			a.Phase = component.AbilityOnCooldown
			a.CooldownLeft = s.cooldownFor(caster, a.Params.CooldownTicks)
		}
	})

	s.world.PushEvent(event.EventAbilityActivated, &event.AbilityPayload{
		Caster:   caster,
		Kind:     uint8(ab.Params.Kind),
		Instance: instance,
	})
}

func (s *AbilitySystem) applyEffect(caster core.Entity, p component.AbilityParams, instance uint64) {
	switch p.Kind {
	case component.AbilitySplash:
		s.splash(caster, p, instance)

	case component.AbilityBuffBundle:
		s.addBuff(caster, component.StatDamage, p.DamageMult, 0, p.DurationTicks)
		s.addMaxHealth(caster, p.HealthBonus, p.DurationTicks)

	case component.AbilitySpeedBuff:
		s.addBuff(caster, component.StatSpeed, p.SpeedMult, 0, p.DurationTicks)
		s.addBuff(caster, component.StatDamage, p.DamageMult, 0, p.DurationTicks)

	case component.AbilityDamageBuff:
		s.addBuff(caster, component.StatDamage, p.DamageMult, 0, p.DurationTicks)

	case component.AbilityBurn:
		s.igniteNearby(caster, p)

	case component.AbilityProjectile:
		s.throwProjectile(caster, p)

	case component.AbilityUltimate:
		s.addBuff(caster, component.StatDamage, p.DamageMult, 0, p.DurationTicks)
		s.addBuff(caster, component.StatSpeed, p.SpeedMult, 0, p.DurationTicks)
		s.addMaxHealth(caster, p.HealthBonus, p.DurationTicks)
	}
}

// splash queues one damage event per enemy inside the radius. All targets
// share the activation's instance id; each is appended exactly once, so
// per-target dedup holds trivially.
func (s *AbilitySystem) splash(caster core.Entity, p component.AbilityParams, instance uint64) {
	origin, ok := s.transforms.Get(caster)
	if !ok {
		return
	}
	for _, target := range s.enemiesWithin(origin.PosX, origin.PosY, p.SplashRadius) {
		tTf, _ := s.transforms.Get(target)
		s.batch.Append(DamageEvent{
			Attacker: caster,
			Target:   target,
			Amount:   p.SplashDamage,
			Kind:     component.HitSplash,
			Instance: instance,
			X:        tTf.PosX,
			Y:        tTf.PosY,
		})
	}
}

func (s *AbilitySystem) igniteNearby(caster core.Entity, p component.AbilityParams) {
	origin, ok := s.transforms.Get(caster)
	if !ok {
		return
	}
	for _, target := range s.enemiesWithin(origin.PosX, origin.PosY, p.BurnRadius) {
		s.burns.Add(target, component.BurnComponent{
			Source:        caster,
			DamagePerSec:  p.BurnDPS,
			TicksLeft:     p.BurnDuration,
			PulseInterval: parameter.TickRate / 2,
			PulseIn:       parameter.TickRate / 2,
		})
	}
}

func (s *AbilitySystem) throwProjectile(caster core.Entity, p component.AbilityParams) {
	tf, ok := s.transforms.Get(caster)
	if !ok {
		return
	}
	cb, ok := s.combatants.Get(caster)
	if !ok {
		return
	}
	damage := p.ProjectileDamage
	if b, ok := s.buffs.Get(caster); ok {
		damage = b.Value(component.StatDamage, damage)
	}
	SpawnProjectile(s.world, caster, tf.PosX, tf.PosY, cb.FacingX, cb.FacingY, damage, s.time.Tick)
}

// enemiesWithin returns living hostile entities inside the radius, in slot
// order.
func (s *AbilitySystem) enemiesWithin(x, y, radius int64) []core.Entity {
	var out []core.Entity
	for _, e := range s.hurtboxes.All() {
		if s.deaths.Has(e) {
			continue
		}
		f, ok := s.factions.Get(e)
		if !ok || f.Faction != core.FactionEnemy {
			continue
		}
		tf, ok := s.transforms.Get(e)
		if !ok {
			continue
		}
		if vmath.DistanceApprox(tf.PosX-x, tf.PosY-y) <= radius {
			out = append(out, e)
		}
	}
	return out
}

func (s *AbilitySystem) addBuff(e core.Entity, stat component.Stat, mult, add int64, duration uint32) {
	mod := component.BuffModifier{
		Source:      component.SourceAbility,
		Stat:        stat,
		Mult:        mult,
		Add:         add,
		ExpiresTick: s.time.Tick + uint64(duration),
	}
	if !s.buffs.Update(e, func(b *component.BuffComponent) {
		b.Mods = append(b.Mods, mod)
	}) {
		s.buffs.Add(e, component.BuffComponent{Mods: []component.BuffModifier{mod}})
	}
}

// addMaxHealth grows the health pool immediately and records the modifier
// so the buff pass can shrink the pool back when the bonus lapses.
func (s *AbilitySystem) addMaxHealth(e core.Entity, bonus int64, duration uint32) {
	if bonus == 0 {
		return
	}
	s.addBuff(e, component.StatMaxHealth, 0, bonus, duration)
	s.healths.Update(e, func(h *component.HealthComponent) {
		h.RaiseMax(bonus)
	})
}
