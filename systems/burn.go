package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// BurnSystem pulses active damage-over-time effects. Every pulse draws a
// fresh attack instance id, so periodic damage is never swallowed by the
// repeat-hit dedup that guards sustained hitbox overlap.
type BurnSystem struct {
	world   *engine.World
	session *engine.SessionResource
	batch   *DamageBatch

	burns      *engine.Store[component.BurnComponent]
	transforms *engine.Store[component.TransformComponent]
	deaths     *engine.Store[component.DeathComponent]
}

func NewBurnSystem(world *engine.World) engine.System {
	return &BurnSystem{
		world:      world,
		session:    engine.MustGetResource[*engine.SessionResource](world.Resources),
		batch:      engine.MustGetResource[*DamageBatch](world.Resources),
		burns:      world.Components.Burns,
		transforms: world.Components.Transforms,
		deaths:     world.Components.Deaths,
	}
}

func (s *BurnSystem) Priority() int {
	return parameter.PriorityBurn
}

func (s *BurnSystem) Update() {
	for _, e := range s.burns.All() {
		if s.deaths.Has(e) {
			s.burns.Remove(e)
			continue
		}

		burn, _ := s.burns.Get(e)

		pulse := false
		if burn.PulseIn > 0 {
			burn.PulseIn--
		}
		if burn.PulseIn == 0 {
			pulse = true
			burn.PulseIn = burn.PulseInterval
		}

		if pulse {
			// Damage per pulse = DPS × interval in seconds
			amount := vmath.Mul(burn.DamagePerSec,
				vmath.Div(vmath.FromInt(int(burn.PulseInterval)), vmath.FromInt(parameter.TickRate)))
			tf, _ := s.transforms.Get(e)
			s.batch.Append(DamageEvent{
				Attacker: burn.Source,
				Target:   e,
				Amount:   amount,
				Kind:     component.HitBurn,
				Instance: s.session.NextInstance(),
				X:        tf.PosX,
				Y:        tf.PosY,
			})
		}

		if burn.TicksLeft > 0 {
			burn.TicksLeft--
		}
		if burn.TicksLeft == 0 {
			s.burns.Remove(e)
			continue
		}
		s.burns.Add(e, burn)
	}
}
