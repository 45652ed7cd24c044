package systems

import (
	"sync/atomic"

	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/data"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/status"
)

// WaveSystem is the session director: it opens waves, meters spawns from
// the wave budget, detects clears and hands control to the shop phase.
// Every fifth wave is a boss encounter; the boss replaces the whole spawn
// budget, so no trash units share its arena.
type WaveSystem struct {
	world   *engine.World
	session *engine.SessionResource
	arena   *engine.ArenaResource

	statSpawned *atomic.Int64
	statDropped *atomic.Int64
}

func NewWaveSystem(world *engine.World) engine.System {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &WaveSystem{
		world:       world,
		session:     engine.MustGetResource[*engine.SessionResource](world.Resources),
		arena:       engine.MustGetResource[*engine.ArenaResource](world.Resources),
		statSpawned: reg.Ints.Get("wave.spawned"),
		statDropped: reg.Ints.Get("wave.dropped"),
	}
}

func (s *WaveSystem) Priority() int {
	return parameter.PriorityWave
}

func (s *WaveSystem) Update() {
	if s.session.Phase != core.PhaseFighting {
		return
	}

	if !s.session.WaveActive {
		s.startWave()
		return
	}

	s.meterSpawns()
	s.checkCompletion()
}

func (s *WaveSystem) startWave() {
	s.session.Wave++
	s.session.WaveActive = true
	s.session.SpawnTimer = 0
	s.session.BossActive = s.session.Wave%parameter.BossWaveInterval == 0

	if s.session.BossActive {
		// The boss is the wave: suppress regular spawns entirely
		s.session.SpawnBudget = 0
		x, y := s.spawnPoint()
		if SpawnBoss(s.world, s.session.Wave, x, y).IsNull() {
			s.statDropped.Add(1)
		}
		s.world.PushEvent(event.EventBossSpawned, &event.WavePayload{
			Wave: s.session.Wave,
			Boss: true,
		})
	} else {
		s.session.SpawnBudget = data.WaveBudget(s.session.Wave)
	}

	s.world.PushEvent(event.EventWaveStarted, &event.WavePayload{
		Wave: s.session.Wave,
		Boss: s.session.BossActive,
	})
}

func (s *WaveSystem) meterSpawns() {
	if s.session.SpawnBudget <= 0 {
		return
	}
	if s.session.SpawnTimer > 0 {
		s.session.SpawnTimer--
		return
	}

	pool := data.UnlockedArchetypes(s.session.Wave)
	arch := pool[s.session.Rng.Intn(len(pool))]
	x, y := s.spawnPoint()
	if SpawnEnemy(s.world, arch, s.session.Wave, x, y).IsNull() {
		s.statDropped.Add(1)
	} else {
		s.statSpawned.Add(1)
	}

	s.session.SpawnBudget--
	s.session.SpawnTimer = parameter.SpawnInterval
}

// checkCompletion closes the wave once the budget is spent and no hostile
// unit survives; kills resolved last tick were culled before this runs.
func (s *WaveSystem) checkCompletion() {
	if s.session.SpawnBudget > 0 || s.world.Components.AIs.Count() > 0 {
		return
	}

	bonus := parameter.WaveClearBase + parameter.WaveClearPerWave*int64(s.session.Wave)
	s.session.Currency += bonus
	s.session.Score += bonus
	s.session.WaveActive = false
	s.session.BossActive = false
	s.session.Phase = core.PhaseShop
	s.session.ShopOpen = true

	if s.world.Alive(s.session.Player) {
		s.world.Components.Healths.Update(s.session.Player, func(h *component.HealthComponent) {
			h.Heal(parameter.WaveClearHeal)
		})
	}

	s.world.PushEvent(event.EventWaveCompleted, &event.WavePayload{
		Wave: s.session.Wave,
	})
}

// spawnPoint picks a deterministic pseudo-random point along one arena
// edge, inset by the spawn margin.
func (s *WaveSystem) spawnPoint() (int64, int64) {
	rng := s.session.Rng
	margin := parameter.SpawnEdgeMargin
	switch rng.Intn(4) {
	case 0: // top
		return rng.FixedRange(margin, s.arena.Width-margin), margin
	case 1: // bottom
		return rng.FixedRange(margin, s.arena.Width-margin), s.arena.Height - margin
	case 2: // left
		return margin, rng.FixedRange(margin, s.arena.Height-margin)
	default: // right
		return s.arena.Width - margin, rng.FixedRange(margin, s.arena.Height-margin)
	}
}
