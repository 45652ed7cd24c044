package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
)

// BuffSystem expires timed modifiers. Running before physics and combat
// means a buff that lapses on tick N no longer shapes tick N's movement or
// damage, so derived stats are consistent within the step.
type BuffSystem struct {
	world   *engine.World
	time    *engine.TimeResource
	buffs   *engine.Store[component.BuffComponent]
	healths *engine.Store[component.HealthComponent]
}

func NewBuffSystem(world *engine.World) engine.System {
	return &BuffSystem{
		world:   world,
		time:    engine.MustGetResource[*engine.TimeResource](world.Resources),
		buffs:   world.Components.Buffs,
		healths: world.Components.Healths,
	}
}

func (s *BuffSystem) Priority() int {
	return parameter.PriorityBuff
}

func (s *BuffSystem) Update() {
	tick := s.time.Tick
	for _, e := range s.buffs.All() {
		var lostMaxHealth int64
		s.buffs.Update(e, func(b *component.BuffComponent) {
			kept := b.Mods[:0]
			for _, m := range b.Mods {
				if m.ExpiresTick == 0 || m.ExpiresTick > tick {
					kept = append(kept, m)
					continue
				}
				// Max-health bonuses shaped the pool directly; take the
				// grant back when the modifier lapses
				if m.Stat == component.StatMaxHealth {
					lostMaxHealth += m.Add
				}
			}
			b.Mods = kept
		})
		if lostMaxHealth != 0 {
			s.healths.Update(e, func(h *component.HealthComponent) {
				h.Max -= lostMaxHealth
				if h.Max < 1 {
					h.Max = 1
				}
				if h.Current > h.Max {
					h.Current = h.Max
				}
			})
		}
	}
}
