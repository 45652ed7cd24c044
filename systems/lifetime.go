package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
)

// LifetimeSystem counts down per-entity tick budgets and requests
// destruction on expiry. Expired entities still exist until the cull pass.
type LifetimeSystem struct {
	world     *engine.World
	lifetimes *engine.Store[component.LifetimeComponent]
}

func NewLifetimeSystem(world *engine.World) engine.System {
	return &LifetimeSystem{
		world:     world,
		lifetimes: world.Components.Lifetimes,
	}
}

func (s *LifetimeSystem) Priority() int {
	return parameter.PriorityLifetime
}

func (s *LifetimeSystem) Update() {
	for _, e := range s.lifetimes.All() {
		expired := false
		s.lifetimes.Update(e, func(l *component.LifetimeComponent) {
			if l.TicksLeft > 0 {
				l.TicksLeft--
			}
			expired = l.TicksLeft == 0
		})
		if expired {
			s.world.DestroyEntity(e)
		}
	}
}
