package systems

import (
	"github.com/ashenfell/brawlarc/engine"
)

// newTestWorld builds a fully resourced world with a damage batch but no
// systems; each test registers only the pipeline slice it exercises.
func newTestWorld(seed uint64) *engine.World {
	w := engine.NewSimulationWorld(seed)
	engine.AddResource(w.Resources, NewDamageBatch())
	return w
}

// step advances the world n ticks the way the scheduler would, without
// involving wall time.
func step(w *engine.World, n int) {
	timeRes := engine.MustGetResource[*engine.TimeResource](w.Resources)
	for i := 0; i < n; i++ {
		timeRes.Tick++
		w.Update()
	}
}
