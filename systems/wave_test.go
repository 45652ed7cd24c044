package systems

import (
	"testing"

	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/data"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

func waveWorld(seed uint64) (*engine.World, *engine.SessionResource) {
	w := newTestWorld(seed)
	w.AddSystem(NewWaveSystem(w))
	SpawnPlayer(w, 0)
	return w, engine.MustGetResource[*engine.SessionResource](w.Resources)
}

func TestWaveBudget(t *testing.T) {
	if got := data.WaveBudget(1); got != 4 {
		t.Errorf("Wave 1 budget: expected 4, got %d", got)
	}
	if got := data.WaveBudget(5); got != 8 {
		t.Errorf("Wave 5 budget: expected 8, got %d", got)
	}
}

func TestFirstWaveStarts(t *testing.T) {
	w, session := waveWorld(1)

	step(w, 1)
	if session.Wave != 1 {
		t.Errorf("Expected wave 1, got %d", session.Wave)
	}
	if !session.WaveActive {
		t.Errorf("Wave must be active")
	}
	if session.SpawnBudget != data.WaveBudget(1) {
		t.Errorf("Expected budget %d, got %d", data.WaveBudget(1), session.SpawnBudget)
	}
}

func TestWaveSpendsWholeBudget(t *testing.T) {
	w, session := waveWorld(1)

	// Enough ticks for every metered spawn
	step(w, 2+data.WaveBudget(1)*(parameter.SpawnInterval+1))

	if session.SpawnBudget != 0 {
		t.Errorf("Budget must be spent, %d left", session.SpawnBudget)
	}
	if got := w.Components.AIs.Count(); got != data.WaveBudget(1) {
		t.Errorf("Expected %d hostiles, got %d", data.WaveBudget(1), got)
	}
}

func TestBossWaveSuppressesSpawns(t *testing.T) {
	w, session := waveWorld(1)
	session.Wave = parameter.BossWaveInterval - 1

	step(w, 1)
	if session.Wave != parameter.BossWaveInterval {
		t.Fatalf("Expected wave %d, got %d", parameter.BossWaveInterval, session.Wave)
	}
	if !session.BossActive {
		t.Errorf("Boss wave must flag the boss")
	}
	if w.Components.Bosses.Count() != 1 {
		t.Errorf("Expected one boss entity")
	}

	// No trash units ever join a boss wave
	step(w, parameter.SpawnInterval*3)
	if got := w.Components.AIs.Count(); got != 1 {
		t.Errorf("Boss must be the only hostile, got %d", got)
	}
}

func TestWaveCompletionEntersShop(t *testing.T) {
	w, session := waveWorld(1)

	step(w, 1) // wave 1 opens
	// Drain the budget without metering: force it spent, kill all hostiles
	session.SpawnBudget = 0
	for _, e := range w.Components.AIs.All() {
		w.DestroyEntity(e)
	}
	w.FreeDead()

	healthBefore, _ := w.Components.Healths.Get(session.Player)
	goldBefore := session.Currency
	step(w, 1)

	if session.Phase != core.PhaseShop {
		t.Errorf("Cleared wave must enter shop phase")
	}
	if session.WaveActive {
		t.Errorf("Wave must be closed")
	}
	wantBonus := parameter.WaveClearBase + parameter.WaveClearPerWave*1
	if session.Currency != goldBefore+wantBonus {
		t.Errorf("Expected +%d clear bonus, got %d", wantBonus, session.Currency-goldBefore)
	}

	// Clear heal applies, clamped at max
	healthAfter, _ := w.Components.Healths.Get(session.Player)
	if healthAfter.Current < healthBefore.Current {
		t.Errorf("Wave clear must not hurt the player")
	}
}

func TestNextWaveAfterShopConfirm(t *testing.T) {
	w := newTestWorld(1)
	w.AddSystem(NewIntentSystem(w))
	w.AddSystem(NewWaveSystem(w))
	w.AddSystem(NewShopSystem(w))
	SpawnPlayer(w, 0)
	session := engine.MustGetResource[*engine.SessionResource](w.Resources)

	step(w, 1)
	session.SpawnBudget = 0
	for _, e := range w.Components.AIs.All() {
		w.DestroyEntity(e)
	}
	w.FreeDead()
	step(w, 1)

	if session.Phase != core.PhaseShop {
		t.Fatal("Expected shop phase")
	}

	engine.MustGetResource[*engine.IntentQueue](w.Resources).
		Push(core.Intent{Kind: core.IntentConfirmSelection})
	step(w, 1)
	if session.Phase != core.PhaseFighting {
		t.Fatal("Confirm must resume fighting")
	}

	step(w, 1)
	if session.Wave != 2 {
		t.Errorf("Expected wave 2 after confirm, got %d", session.Wave)
	}
	if session.SpawnBudget != data.WaveBudget(2) {
		t.Errorf("Expected fresh budget %d, got %d", data.WaveBudget(2), session.SpawnBudget)
	}
}

func TestSpawnPointsInsideArena(t *testing.T) {
	w, _ := waveWorld(7)
	arena := engine.MustGetResource[*engine.ArenaResource](w.Resources)

	step(w, 2+data.WaveBudget(1)*(parameter.SpawnInterval+1))

	for _, e := range w.Components.AIs.All() {
		tf, _ := w.Components.Transforms.Get(e)
		if tf.PosX < 0 || tf.PosX > arena.Width || tf.PosY < 0 || tf.PosY > arena.Height {
			t.Errorf("Spawn outside arena: %v,%v", vmath.ToFloat(tf.PosX), vmath.ToFloat(tf.PosY))
		}
	}
}
