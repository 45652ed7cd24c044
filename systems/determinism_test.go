package systems

import (
	"reflect"
	"testing"

	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/vmath"
)

// worldFingerprint is the complete observable state of a run, captured for
// bit-exact comparison.
type worldFingerprint struct {
	Tick     uint64
	Wave     int
	Score    int64
	Currency int64
	Phase    core.SessionPhase

	Entities   []core.Entity
	Transforms []component.TransformComponent
	Healths    []component.HealthComponent
}

func fingerprint(w *engine.World, sched *engine.Scheduler) worldFingerprint {
	session := engine.MustGetResource[*engine.SessionResource](w.Resources)
	fp := worldFingerprint{
		Tick:     sched.Tick(),
		Wave:     session.Wave,
		Score:    session.Score,
		Currency: session.Currency,
		Phase:    session.Phase,
	}
	for _, e := range w.Components.Transforms.All() {
		tf, _ := w.Components.Transforms.Get(e)
		fp.Entities = append(fp.Entities, e)
		fp.Transforms = append(fp.Transforms, tf)
		if h, ok := w.Components.Healths.Get(e); ok {
			fp.Healths = append(fp.Healths, h)
		}
	}
	return fp
}

// scriptedRun plays a fixed intent script for n steps and returns the
// resulting state.
func scriptedRun(seed uint64, n int) worldFingerprint {
	w := engine.NewSimulationWorld(seed)
	Register(w)
	SpawnPlayer(w, 0)
	sched := engine.NewScheduler(w)
	intents := engine.MustGetResource[*engine.IntentQueue](w.Resources)

	dirs := [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i := 0; i < n; i++ {
		d := dirs[(i/60)%len(dirs)]
		intents.Push(core.Intent{
			Kind: core.IntentMove,
			DirX: vmath.FromInt(d[0]),
			DirY: vmath.FromInt(d[1]),
		})
		if i%13 == 0 {
			intents.Push(core.Intent{Kind: core.IntentLightAttack})
		}
		if i%97 == 0 {
			intents.Push(core.Intent{Kind: core.IntentHeavyAttack})
		}
		if i%211 == 0 {
			intents.Push(core.Intent{Kind: core.IntentActivateAbility})
		}
		if i%500 == 499 {
			// Shop interactions are no-ops outside the shop phase
			intents.Push(core.Intent{Kind: core.IntentBuyUpgrade, Slot: i % 6})
			intents.Push(core.Intent{Kind: core.IntentConfirmSelection})
		}
		sched.Step()
	}
	return fingerprint(w, sched)
}

// Two runs from the same seed and intent script must be bit-identical.
func TestDeterministicReplay(t *testing.T) {
	a := scriptedRun(12345, 3000)
	b := scriptedRun(12345, 3000)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Identical seed and script must reproduce identical state")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := scriptedRun(1, 3000)
	b := scriptedRun(2, 3000)

	// Spawn placement and timing depend on the seed; a long run with
	// different seeds should not coincide
	if reflect.DeepEqual(a, b) {
		t.Errorf("Different seeds produced identical runs; rng not wired through")
	}
}

func TestFullPipelineSurvivesLongRun(t *testing.T) {
	w := engine.NewSimulationWorld(777)
	Register(w)
	SpawnPlayer(w, 2)
	sched := engine.NewScheduler(w)

	for i := 0; i < 5000; i++ {
		sched.Step()
	}

	session := engine.MustGetResource[*engine.SessionResource](w.Resources)
	if session.Wave < 1 {
		t.Errorf("Director must have opened at least one wave")
	}
	if w.EntityCount() <= 0 {
		t.Errorf("World must hold live entities")
	}
	snap := sched.Snapshot()
	if snap == nil || snap.Tick != 5000 {
		t.Errorf("Snapshot must track the executed steps")
	}
}
