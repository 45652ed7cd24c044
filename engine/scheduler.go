package engine

import (
	"sync/atomic"
	"time"

	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/status"
	"github.com/ashenfell/brawlarc/vmath"
)

// Scheduler drives the simulation at a fixed Δt. It accumulates elapsed
// wall time and executes steps while a full Δt is available, capped per
// Advance call; time beyond the cap is discarded so a stall can never
// trigger an unbounded step burst. Pausing freezes the accumulator.
//
// Determinism contract: for a fixed intent sequence the executed step
// sequence — and hence final state — depends only on Δt and step count,
// never on frame rate or catch-up timing.
type Scheduler struct {
	world   *World
	timeRes *TimeResource
	session *SessionResource
	eq      *event.EventQueue
	intents *IntentQueue

	interval    time.Duration
	accumulator time.Duration
	maxCatchUp  int
	paused      bool
	tick        uint64

	pendingEvents []event.GameEvent
	snapshot      atomic.Pointer[Snapshot]

	statTicks     *atomic.Int64
	statDiscarded *atomic.Int64
}

// NewScheduler wires a scheduler to a fully resourced world. The time
// resource, session, event queue, intent queue and status registry must be
// registered before this call.
func NewScheduler(world *World) *Scheduler {
	reg := MustGetResource[*status.Registry](world.Resources)
	s := &Scheduler{
		world:         world,
		timeRes:       MustGetResource[*TimeResource](world.Resources),
		session:       MustGetResource[*SessionResource](world.Resources),
		eq:            MustGetResource[*EventQueueResource](world.Resources).Queue,
		intents:       MustGetResource[*IntentQueue](world.Resources),
		interval:      parameter.TickInterval,
		maxCatchUp:    parameter.MaxCatchUpSteps,
		statTicks:     reg.Ints.Get("engine.ticks"),
		statDiscarded: reg.Ints.Get("engine.steps_discarded"),
	}
	s.publish()
	return s
}

// Advance accumulates elapsed time and executes up to the step cap.
// Returns the number of steps executed. Pause toggles are honored here even
// while no steps run, so an unpause intent is never starved.
func (s *Scheduler) Advance(elapsed time.Duration) int {
	if toggles := s.intents.TakeControl(); toggles%2 == 1 {
		s.paused = !s.paused
		s.publish()
	}
	if s.paused {
		return 0
	}

	s.accumulator += elapsed
	steps := 0
	for s.accumulator >= s.interval {
		if steps >= s.maxCatchUp {
			// Discard whole steps beyond the cap; keep the sub-Δt remainder
			// so the interpolation factor stays continuous
			s.statDiscarded.Add(int64(s.accumulator / s.interval))
			s.accumulator %= s.interval
			break
		}
		s.accumulator -= s.interval
		s.step()
		steps++
	}
	if steps > 0 {
		s.publish()
	}
	return steps
}

// Step executes exactly one simulation step regardless of accumulated
// time. Tests and replay drivers use this for exact step counts.
func (s *Scheduler) Step() {
	s.step()
	s.publish()
}

// Alpha returns the interpolation factor (remaining accumulator / Δt) in
// [0, 1) for presentation smoothing. Reading it never mutates state.
func (s *Scheduler) Alpha() float64 {
	return float64(s.accumulator) / float64(s.interval)
}

// SetPaused sets the pause state directly (menu-driven pause).
func (s *Scheduler) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	s.publish()
}

// IsPaused reports the pause state.
func (s *Scheduler) IsPaused() bool {
	return s.paused
}

// Tick returns the number of executed steps.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Snapshot returns the latest published snapshot. Safe from any goroutine;
// the returned value is immutable.
func (s *Scheduler) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Scheduler) step() {
	s.tick++
	s.timeRes.Tick = s.tick

	s.world.Update()

	if evs := s.eq.Consume(); len(evs) > 0 {
		s.pendingEvents = append(s.pendingEvents, evs...)
	}
	s.statTicks.Store(int64(s.tick))
}

// publish builds and swaps in a fresh snapshot. Single writer; renderers
// load the pointer and read freely.
func (s *Scheduler) publish() {
	cs := &s.world.Components
	ses := s.session

	snap := &Snapshot{
		Tick:     s.tick,
		Entities: make([]EntitySnapshot, 0, cs.Transforms.Count()),
	}

	for _, e := range cs.Transforms.All() {
		tf, _ := cs.Transforms.Get(e)
		es := EntitySnapshot{
			Entity: e,
			X:      vmath.ToFloat(tf.PosX),
			Y:      vmath.ToFloat(tf.PosY),
			VelX:   vmath.ToFloat(tf.VelX),
			VelY:   vmath.ToFloat(tf.VelY),
		}
		if f, ok := cs.Factions.Get(e); ok {
			es.Faction = f.Faction
		}
		if h, ok := cs.Healths.Get(e); ok {
			es.HasHealth = true
			es.Health = vmath.ToFloat(h.Current)
			es.MaxHealth = vmath.ToFloat(h.Max)
		}
		if c, ok := cs.Combatants.Get(e); ok {
			es.Glyph = c.Glyph
		}
		es.Boss = cs.Bosses.Has(e)
		es.Projectile = cs.Projectiles.Has(e)
		snap.Entities = append(snap.Entities, es)
	}

	snap.HUD = HUDSnapshot{
		Wave:        ses.Wave,
		Currency:    ses.Currency,
		Score:       ses.Score,
		Phase:       ses.Phase,
		BossActive:  ses.BossActive,
		Paused:      s.paused,
		ShopOpen:    ses.ShopOpen,
		ShowDetails: ses.ShowDetails,
	}
	if ab, ok := cs.Abilities.Get(ses.Player); ok {
		if ab.Params.CooldownTicks > 0 {
			snap.HUD.CooldownFrac = float64(ab.CooldownLeft) / float64(ab.Params.CooldownTicks)
		}
		if parameter.ChargeMax > 0 {
			snap.HUD.ChargeFrac = vmath.ToFloat(ab.Charge) / vmath.ToFloat(parameter.ChargeMax)
		}
	}
	if h, ok := cs.Healths.Get(ses.Player); ok {
		snap.HUD.PlayerHealth = vmath.ToFloat(h.Current)
		snap.HUD.PlayerMax = vmath.ToFloat(h.Max)
	}

	snap.Events = s.pendingEvents
	s.pendingEvents = nil

	s.snapshot.Store(snap)
}
