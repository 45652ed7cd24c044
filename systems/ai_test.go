package systems

import (
	"testing"

	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

func aiWorld(seed uint64) *engine.World {
	w := newTestWorld(seed)
	w.AddSystem(NewAISystem(w))
	return w
}

func TestSeparationDoesNotOutrunBaseSpeed(t *testing.T) {
	w := aiWorld(1)
	player := SpawnPlayer(w, 0)
	pTf, _ := w.Components.Transforms.Get(player)

	// Two packmates well inside separation range, target far to the right.
	// Seek plus the mutual push would exceed base speed without the cap.
	x := pTf.PosX - vmath.FromInt(10)
	a := SpawnEnemy(w, 0, 1, x, pTf.PosY)
	b := SpawnEnemy(w, 0, 1, x, pTf.PosY+vmath.FromFloat(0.5))

	// Past the longest possible reaction delay both units are driving
	step(w, parameter.EnemyReactionMax+1)

	base := vmath.ToFloat(parameter.EnemyBaseSpeed)
	for _, e := range []core.Entity{a, b} {
		tf, ok := w.Components.Transforms.Get(e)
		if !ok {
			t.Fatalf("Enemy transform missing")
		}
		speed := vmath.ToFloat(vmath.Sqrt(vmath.MagnitudeSq(tf.VelX, tf.VelY)))
		if speed == 0 {
			t.Errorf("Enemy must be driving after its reaction delay")
		}
		if speed > base*1.01 {
			t.Errorf("Enemy speed %v exceeds base speed %v", speed, base)
		}
	}
}
