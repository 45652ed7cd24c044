package systems

import (
	"testing"

	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

func physicsWorld(seed uint64) *engine.World {
	w := newTestWorld(seed)
	w.AddSystem(NewIntentSystem(w))
	w.AddSystem(NewBuffSystem(w))
	w.AddSystem(NewPhysicsSystem(w))
	return w
}

func pushMove(w *engine.World, dx, dy int) {
	engine.MustGetResource[*engine.IntentQueue](w.Resources).Push(core.Intent{
		Kind: core.IntentMove,
		DirX: vmath.FromInt(dx),
		DirY: vmath.FromInt(dy),
	})
}

func TestPlayerMovesFromIntent(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)
	before, _ := w.Components.Transforms.Get(player)

	pushMove(w, 1, 0)
	step(w, 1)

	after, _ := w.Components.Transforms.Get(player)
	moved := vmath.ToFloat(after.PosX - before.PosX)
	// 18 units/s over one 1/120 s step
	want := 18.0 / float64(parameter.TickRate)
	if moved < want*0.99 || moved > want*1.01 {
		t.Errorf("Expected %v units of travel, got %v", want, moved)
	}
	if after.PosY != before.PosY {
		t.Errorf("Pure x movement must not drift in y")
	}
}

func TestPlayerStopsOnZeroDirection(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)

	pushMove(w, 1, 0)
	step(w, 1)
	// Explicit release: zero direction clears the latch
	pushMove(w, 0, 0)
	step(w, 1)

	tf, _ := w.Components.Transforms.Get(player)
	if tf.VelX != 0 || tf.VelY != 0 {
		t.Errorf("Player must stop when the direction is released")
	}
}

func TestHeldDirectionLatchesAcrossSteps(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)
	before, _ := w.Components.Transforms.Get(player)

	// One intent, many steps: the latch keeps the player at full speed
	pushMove(w, 1, 0)
	step(w, parameter.TickRate)

	after, _ := w.Components.Transforms.Get(player)
	moved := vmath.ToFloat(after.PosX - before.PosX)
	if moved < 17.8 || moved > 18.2 {
		t.Errorf("Expected 18 units over one second of held movement, got %v", moved)
	}
}

func TestHeldMovementFullSpeedUnderFrameStepping(t *testing.T) {
	// A 60 Hz frontend pushes at most one Move intent per frame while each
	// frame executes two 120 Hz steps. The latch must keep the second step
	// of every frame moving; without it half the steps see a released stick
	// and travel drops to half the tuned speed.
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)
	sched := engine.NewScheduler(w)
	before, _ := w.Components.Transforms.Get(player)

	for frame := 0; frame < 60; frame++ {
		pushMove(w, 1, 0)
		if steps := sched.Advance(2 * parameter.TickInterval); steps != 2 {
			t.Fatalf("Expected 2 steps per frame, got %d", steps)
		}
	}

	after, _ := w.Components.Transforms.Get(player)
	moved := vmath.ToFloat(after.PosX - before.PosX)
	if moved < 17.8 || moved > 18.2 {
		t.Errorf("Expected 18 units over 60 two-step frames, got %v", moved)
	}
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)

	pushMove(w, 1, 1)
	step(w, 1)

	tf, _ := w.Components.Transforms.Get(player)
	speed := vmath.ToFloat(vmath.Sqrt(vmath.MagnitudeSq(tf.VelX, tf.VelY)))
	if speed < 17.9 || speed > 18.1 {
		t.Errorf("Diagonal speed must equal base speed, got %v", speed)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)
	arena := engine.MustGetResource[*engine.ArenaResource](w.Resources)

	// Hold left for far longer than crossing the arena takes
	for i := 0; i < parameter.TickRate*20; i++ {
		pushMove(w, -1, 0)
		step(w, 1)
	}

	tf, _ := w.Components.Transforms.Get(player)
	if tf.PosX < parameter.PlayerRadius {
		t.Errorf("Player center must stay a radius inside the wall")
	}
	if tf.PosX > arena.Width {
		t.Errorf("Player escaped the arena")
	}
}

func TestSolidBodiesSeparate(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)
	pTf, _ := w.Components.Transforms.Get(player)

	// Enemy overlapping the player
	enemy := SpawnEnemy(w, 0, 1, pTf.PosX+vmath.FromFloat(0.5), pTf.PosY)

	for i := 0; i < 60; i++ {
		step(w, 1)
	}

	a, _ := w.Components.Transforms.Get(player)
	b, _ := w.Components.Transforms.Get(enemy)
	dist := vmath.ToFloat(vmath.Magnitude(b.PosX-a.PosX, b.PosY-a.PosY))
	minDist := vmath.ToFloat(parameter.PlayerRadius+parameter.EnemyRadius) - 0.05
	if dist < minDist {
		t.Errorf("Solid bodies must separate, distance %v < %v", dist, minDist)
	}
}

func TestBuffedSpeedAppliesToMovement(t *testing.T) {
	w := physicsWorld(1)
	player := SpawnPlayer(w, 0)

	w.Components.Buffs.Update(player, func(b *component.BuffComponent) {
		b.Mods = append(b.Mods, component.BuffModifier{
			Source: component.SourceUpgrade,
			Stat:   component.StatSpeed,
			Mult:   vmath.FromInt(2),
		})
	})

	pushMove(w, 1, 0)
	step(w, 1)

	tf, _ := w.Components.Transforms.Get(player)
	speed := vmath.ToFloat(tf.VelX)
	if speed < 35.9 || speed > 36.1 {
		t.Errorf("Expected doubled speed 36, got %v", speed)
	}
}

func TestProjectileFliesAndExpires(t *testing.T) {
	w := newTestWorld(1)
	w.AddSystem(NewIntentSystem(w))
	w.AddSystem(NewPhysicsSystem(w))
	w.AddSystem(NewLifetimeSystem(w))
	w.AddSystem(NewCullSystem(w))
	player := SpawnPlayer(w, 0)
	pTf, _ := w.Components.Transforms.Get(player)

	proj := SpawnProjectile(w, player, pTf.PosX, pTf.PosY, vmath.Scale, 0, vmath.FromInt(10), 0)
	step(w, 10)

	tf, _ := w.Components.Transforms.Get(proj)
	if tf.PosX <= pTf.PosX {
		t.Errorf("Projectile must travel along its direction")
	}

	step(w, parameter.ProjectileLifetime)
	if w.Alive(proj) {
		t.Errorf("Projectile must expire with its lifetime")
	}
}
