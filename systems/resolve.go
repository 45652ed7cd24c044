package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// ResolveSystem applies the step's damage batch in one pass: armor, the
// health write, life steal, charge gain, kill credit and boss phase checks.
// Batching means simultaneous hits resolve against the same starting
// health; a target at 10 taking two 15s dies once, at zero.
type ResolveSystem struct {
	world   *engine.World
	session *engine.SessionResource
	batch   *DamageBatch

	healths   *engine.Store[component.HealthComponent]
	buffs     *engine.Store[component.BuffComponent]
	factions  *engine.Store[component.FactionComponent]
	abilities *engine.Store[component.AbilityComponent]
	bosses    *engine.Store[component.BossComponent]
	deaths    *engine.Store[component.DeathComponent]
}

func NewResolveSystem(world *engine.World) engine.System {
	return &ResolveSystem{
		world:     world,
		session:   engine.MustGetResource[*engine.SessionResource](world.Resources),
		batch:     engine.MustGetResource[*DamageBatch](world.Resources),
		healths:   world.Components.Healths,
		buffs:     world.Components.Buffs,
		factions:  world.Components.Factions,
		abilities: world.Components.Abilities,
		bosses:    world.Components.Bosses,
		deaths:    world.Components.Deaths,
	}
}

func (s *ResolveSystem) Priority() int {
	return parameter.PriorityResolve
}

func (s *ResolveSystem) Update() {
	for _, ev := range s.batch.Events {
		s.apply(ev)
	}
	s.batch.Reset()
}

func (s *ResolveSystem) apply(ev DamageEvent) {
	// A target may die mid-batch; later events on it still land against
	// zero health and are harmless
	health, ok := s.healths.Get(ev.Target)
	if !ok {
		return
	}
	alreadyDead := s.deaths.Has(ev.Target)

	amount := s.mitigate(ev.Target, ev.Amount)
	health.Damage(amount)
	s.healths.Add(ev.Target, health)

	s.world.PushEvent(event.EventHitLanded, &event.HitPayload{
		Attacker: ev.Attacker,
		Target:   ev.Target,
		Amount:   amount,
		Kind:     uint8(ev.Kind),
		X:        ev.X,
		Y:        ev.Y,
	})

	s.creditAttacker(ev.Attacker, amount)
	s.checkBossPhase(ev.Target)

	if health.Dead() && !alreadyDead {
		s.kill(ev)
	}
}

// mitigate applies the target's armor fraction. Armor stacks additively and
// is capped so damage never fully zeroes out.
func (s *ResolveSystem) mitigate(target core.Entity, amount int64) int64 {
	b, ok := s.buffs.Get(target)
	if !ok {
		return amount
	}
	armor := b.Value(component.StatArmor, 0)
	if armor <= 0 {
		return amount
	}
	maxArmor := vmath.FromFloat(0.75)
	if armor > maxArmor {
		armor = maxArmor
	}
	return vmath.Mul(amount, vmath.Scale-armor)
}

// creditAttacker grants charge and life steal for player-dealt damage.
func (s *ResolveSystem) creditAttacker(attacker core.Entity, amount int64) {
	if attacker != s.session.Player || !s.world.Alive(attacker) {
		return
	}

	s.abilities.Update(attacker, func(ab *component.AbilityComponent) {
		ab.Charge += vmath.Mul(amount, parameter.ChargeGainRatio)
		if ab.Charge > parameter.ChargeMax {
			ab.Charge = parameter.ChargeMax
		}
	})

	if b, ok := s.buffs.Get(attacker); ok {
		if steal := b.Value(component.StatLifeSteal, 0); steal > 0 {
			s.healths.Update(attacker, func(h *component.HealthComponent) {
				h.Heal(vmath.Mul(amount, steal))
			})
		}
	}
}

func (s *ResolveSystem) checkBossPhase(target core.Entity) {
	boss, ok := s.bosses.Get(target)
	if !ok {
		return
	}
	health, ok := s.healths.Get(target)
	if !ok || health.Max == 0 || health.Dead() {
		return
	}

	// Phase p holds while health stays above (count-p)/count of max
	threshold := vmath.MulDiv(health.Max, vmath.FromInt(boss.PhaseCount-boss.Phase), vmath.FromInt(boss.PhaseCount))
	if health.Current > threshold || boss.Phase >= boss.PhaseCount {
		return
	}

	s.bosses.Update(target, func(b *component.BossComponent) {
		b.Phase++
		b.DamageScale += vmath.FromFloat(0.5)
	})
	s.world.PushEvent(event.EventBossPhase, &event.WavePayload{
		Wave:  s.session.Wave,
		Boss:  true,
		Phase: boss.Phase + 1,
	})
}

func (s *ResolveSystem) kill(ev DamageEvent) {
	faction := core.FactionEnemy
	if f, ok := s.factions.Get(ev.Target); ok {
		faction = f.Faction
	}

	var reward int64
	if faction == core.FactionEnemy {
		reward = parameter.KillRewardPerWave * int64(s.session.Wave)
		if s.bosses.Has(ev.Target) {
			reward *= parameter.BossKillRewardScale
		}
		s.session.Currency += reward
		s.session.Score += reward
	}

	s.world.DestroyEntity(ev.Target)
	s.world.PushEvent(event.EventEntityKilled, &event.KillPayload{
		Victim:  ev.Target,
		Killer:  ev.Attacker,
		Faction: faction,
		Reward:  reward,
	})

	if ev.Target == s.session.Player {
		s.session.Phase = core.PhaseGameOver
		s.world.PushEvent(event.EventSessionEnded, nil)
	}
}
