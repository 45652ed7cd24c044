package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/physics"
	"github.com/ashenfell/brawlarc/vmath"
)

// AISystem drives hostile units: seek the target, keep loose separation
// from packmates, swing when in reach. Targets are generation-checked
// handles; a unit whose target died simply stops.
type AISystem struct {
	world   *engine.World
	time    *engine.TimeResource
	session *engine.SessionResource

	ais        *engine.Store[component.AIComponent]
	transforms *engine.Store[component.TransformComponent]
	combatants *engine.Store[component.CombatantComponent]
	bosses     *engine.Store[component.BossComponent]
	deaths     *engine.Store[component.DeathComponent]
}

func NewAISystem(world *engine.World) engine.System {
	return &AISystem{
		world:      world,
		time:       engine.MustGetResource[*engine.TimeResource](world.Resources),
		session:    engine.MustGetResource[*engine.SessionResource](world.Resources),
		ais:        world.Components.AIs,
		transforms: world.Components.Transforms,
		combatants: world.Components.Combatants,
		bosses:     world.Components.Bosses,
		deaths:     world.Components.Deaths,
	}
}

func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

func (s *AISystem) Update() {
	units := s.ais.All()
	for _, e := range units {
		if s.deaths.Has(e) {
			continue
		}
		s.drive(e, units)
	}
}

func (s *AISystem) drive(e core.Entity, pack []core.Entity) {
	ai, _ := s.ais.Get(e)

	if ai.ReactionLeft > 0 {
		s.ais.Update(e, func(a *component.AIComponent) { a.ReactionLeft-- })
		return
	}

	target := ai.Target
	if !s.world.Alive(target) || s.session.Phase != core.PhaseFighting {
		s.halt(e)
		return
	}

	tf, ok := s.transforms.Get(e)
	if !ok {
		return
	}
	targetTf, ok := s.transforms.Get(target)
	if !ok {
		s.halt(e)
		return
	}
	cb, ok := s.combatants.Get(e)
	if !ok {
		return
	}

	dx := targetTf.PosX - tf.PosX
	dy := targetTf.PosY - tf.PosY
	dist := vmath.DistanceApprox(dx, dy)

	nx, ny := vmath.Normalize2D(dx, dy)
	velX := vmath.Mul(nx, cb.BaseSpeed)
	velY := vmath.Mul(ny, cb.BaseSpeed)

	// Loose separation so the pack does not stack into one body; the
	// combined push must not outrun the unit's own speed
	sepX, sepY := s.separation(e, tf, pack)
	velX += sepX
	velY += sepY
	physics.CapSpeed(&velX, &velY, cb.BaseSpeed)

	if dist <= parameter.EnemyMeleeRange {
		velX, velY = 0, 0
	}

	s.transforms.Update(e, func(t *component.TransformComponent) {
		t.VelX, t.VelY = velX, velY
	})
	s.combatants.Update(e, func(c *component.CombatantComponent) {
		c.FacingX, c.FacingY = nx, ny
	})

	if dist <= parameter.EnemyMeleeRange && cb.SwingCooldown == 0 {
		s.swing(e, ai, cb, nx, ny)
	}
}

func (s *AISystem) swing(e core.Entity, ai component.AIComponent, cb component.CombatantComponent, nx, ny int64) {
	damage := vmath.Mul(cb.BaseDamage, ai.Difficulty)
	if boss, ok := s.bosses.Get(e); ok {
		damage = vmath.Mul(damage, boss.DamageScale)
	}

	offX := vmath.Mul(nx, parameter.EnemyMeleeRange)
	offY := vmath.Mul(ny, parameter.EnemyMeleeRange)
	spawnMeleeHitbox(s.world, e,
		component.Circle(parameter.EnemySwingRadius),
		offX, offY, damage, component.HitLight,
		parameter.EnemySwingActive, s.time.Tick)

	s.combatants.Update(e, func(c *component.CombatantComponent) {
		c.SwingCooldown = parameter.EnemySwingCadence
	})
}

func (s *AISystem) separation(e core.Entity, tf component.TransformComponent, pack []core.Entity) (int64, int64) {
	var sx, sy int64
	for _, other := range pack {
		if other == e {
			continue
		}
		otf, ok := s.transforms.Get(other)
		if !ok {
			continue
		}
		dx := tf.PosX - otf.PosX
		dy := tf.PosY - otf.PosY
		if vmath.DistanceApprox(dx, dy) >= parameter.EnemySeparation {
			continue
		}
		nx, ny := vmath.Normalize2D(dx, dy)
		sx += vmath.Mul(nx, parameter.EnemyBaseSpeed>>1)
		sy += vmath.Mul(ny, parameter.EnemyBaseSpeed>>1)
	}
	return sx, sy
}

func (s *AISystem) halt(e core.Entity) {
	s.transforms.Update(e, func(t *component.TransformComponent) {
		t.VelX, t.VelY = 0, 0
	})
}
