package systems

import (
	"sync/atomic"

	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/status"
)

// CullSystem runs last: it recycles every entity tagged for death this
// step and drops expired hit-memory entries. Destruction only happens
// here, so all earlier systems in a step saw a stable entity set.
type CullSystem struct {
	world *engine.World
	time  *engine.TimeResource

	hitMemories *engine.Store[component.HitMemoryComponent]

	statCulled *atomic.Int64
}

func NewCullSystem(world *engine.World) engine.System {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &CullSystem{
		world:       world,
		time:        engine.MustGetResource[*engine.TimeResource](world.Resources),
		hitMemories: world.Components.HitMemories,
		statCulled:  reg.Ints.Get("cull.count"),
	}
}

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

func (s *CullSystem) Update() {
	tick := s.time.Tick
	for _, e := range s.hitMemories.All() {
		s.hitMemories.Update(e, func(m *component.HitMemoryComponent) {
			m.Expire(tick)
		})
	}

	dead := s.world.FreeDead()
	if len(dead) > 0 {
		s.statCulled.Add(int64(len(dead)))
	}
}
