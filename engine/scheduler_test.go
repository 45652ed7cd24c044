package engine

import (
	"testing"
	"time"

	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/parameter"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(NewSimulationWorld(1))
}

func TestAdvanceWholeSteps(t *testing.T) {
	s := newTestScheduler()

	steps := s.Advance(parameter.TickInterval*2 + parameter.TickInterval/2)
	if steps != 2 {
		t.Errorf("Expected 2 steps, got %d", steps)
	}
	if s.Tick() != 2 {
		t.Errorf("Expected tick 2, got %d", s.Tick())
	}

	// Half an interval remains
	alpha := s.Alpha()
	if alpha < 0.49 || alpha > 0.51 {
		t.Errorf("Expected alpha ~0.5, got %v", alpha)
	}
}

func TestAdvanceSubStepAccumulates(t *testing.T) {
	s := newTestScheduler()

	if steps := s.Advance(parameter.TickInterval / 2); steps != 0 {
		t.Errorf("Expected 0 steps for half an interval, got %d", steps)
	}
	if steps := s.Advance(parameter.TickInterval / 2); steps != 1 {
		t.Errorf("Expected the two halves to combine into 1 step, got %d", steps)
	}
}

func TestCatchUpCap(t *testing.T) {
	s := newTestScheduler()

	// A long stall: far more accumulated time than the cap allows
	steps := s.Advance(parameter.TickInterval * 50)
	if steps != parameter.MaxCatchUpSteps {
		t.Errorf("Expected %d capped steps, got %d", parameter.MaxCatchUpSteps, steps)
	}

	// Excess whole steps were discarded, not deferred
	if steps := s.Advance(0); steps != 0 {
		t.Errorf("Expected discarded time to stay discarded, got %d steps", steps)
	}
	if s.Alpha() >= 1.0 {
		t.Errorf("Accumulator must hold less than one interval after discard")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	world := NewSimulationWorld(1)
	s := NewScheduler(world)
	intents := MustGetResource[*IntentQueue](world.Resources)

	intents.Push(core.Intent{Kind: core.IntentTogglePause})
	if steps := s.Advance(parameter.TickInterval * 3); steps != 0 {
		t.Errorf("Expected 0 steps while paused, got %d", steps)
	}
	if !s.IsPaused() {
		t.Errorf("Expected paused state")
	}
	tickBefore := s.Tick()

	// Unpause resumes stepping; time accumulated during pause was frozen out
	intents.Push(core.Intent{Kind: core.IntentTogglePause})
	steps := s.Advance(parameter.TickInterval)
	if s.IsPaused() {
		t.Errorf("Expected unpaused state")
	}
	if steps != 1 {
		t.Errorf("Expected 1 step after unpause, got %d", steps)
	}
	if s.Tick() != tickBefore+1 {
		t.Errorf("Tick must advance only for executed steps")
	}
}

func TestPauseToggleDrainedWithoutSteps(t *testing.T) {
	world := NewSimulationWorld(1)
	s := NewScheduler(world)
	intents := MustGetResource[*IntentQueue](world.Resources)

	// Zero elapsed time: no steps run, the pause toggle must land anyway
	intents.Push(core.Intent{Kind: core.IntentTogglePause})
	s.Advance(0)
	if !s.IsPaused() {
		t.Errorf("Pause intent must be honored even when no steps execute")
	}
}

func TestSnapshotPublished(t *testing.T) {
	s := newTestScheduler()
	if s.Snapshot() == nil {
		t.Fatal("Initial snapshot must exist")
	}
	s.Step()
	snap := s.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Expected snapshot tick 1, got %d", snap.Tick)
	}
}

func TestStepIgnoresWallClock(t *testing.T) {
	s := newTestScheduler()
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Tick() != 10 {
		t.Errorf("Expected exactly 10 ticks, got %d", s.Tick())
	}
	// No time accumulated: Advance below threshold runs nothing
	if steps := s.Advance(time.Microsecond); steps != 0 {
		t.Errorf("Expected 0 steps, got %d", steps)
	}
}
