package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/physics"
	"github.com/ashenfell/brawlarc/vmath"
)

// stepDT is the fixed step delta in Q32.32 seconds.
const stepDT = int64(vmath.Scale / parameter.TickRate)

// PhysicsSystem turns drained input into player velocity, integrates every
// body one fixed step, separates overlapping solids and clamps to the
// arena. Iteration is in slot order, so pair resolution is reproducible.
type PhysicsSystem struct {
	world   *engine.World
	input   *engine.InputResource
	session *engine.SessionResource
	arena   *engine.ArenaResource

	transforms *engine.Store[component.TransformComponent]
	colliders  *engine.Store[component.ColliderComponent]
	combatants *engine.Store[component.CombatantComponent]
	buffs      *engine.Store[component.BuffComponent]
	hitboxes   *engine.Store[component.HitboxComponent]
}

func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{
		world:      world,
		input:      engine.MustGetResource[*engine.InputResource](world.Resources),
		session:    engine.MustGetResource[*engine.SessionResource](world.Resources),
		arena:      engine.MustGetResource[*engine.ArenaResource](world.Resources),
		transforms: world.Components.Transforms,
		colliders:  world.Components.Colliders,
		combatants: world.Components.Combatants,
		buffs:      world.Components.Buffs,
		hitboxes:   world.Components.Hitboxes,
	}
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	s.applyPlayerInput()

	// Integrate every body
	for _, e := range s.transforms.All() {
		s.transforms.Update(e, func(tf *component.TransformComponent) {
			physics.Integrate(tf, stepDT)
		})
	}

	s.resolveSolids()
	s.clampToArena()
	s.anchorHitboxes()
}

func (s *PhysicsSystem) applyPlayerInput() {
	player := s.session.Player
	if !s.world.Alive(player) {
		return
	}

	cb, ok := s.combatants.Get(player)
	if !ok {
		return
	}

	velX, velY := int64(0), int64(0)
	if s.session.Phase == core.PhaseFighting && s.input.Moved {
		// Exact normalize: the player's diagonal speed must equal the tuned
		// speed, not carry the steering approximation's error
		nx, ny := vmath.NormalizeExact(s.input.MoveX, s.input.MoveY)
		speed := cb.BaseSpeed
		if b, ok := s.buffs.Get(player); ok {
			speed = b.Value(component.StatSpeed, speed)
		}
		velX = vmath.Mul(nx, speed)
		velY = vmath.Mul(ny, speed)

		s.combatants.Update(player, func(c *component.CombatantComponent) {
			c.FacingX, c.FacingY = nx, ny
		})
	}

	s.transforms.Update(player, func(tf *component.TransformComponent) {
		tf.VelX, tf.VelY = velX, velY
	})
}

func (s *PhysicsSystem) resolveSolids() {
	solids := s.solidEntities()
	for i := 0; i < len(solids); i++ {
		for j := i + 1; j < len(solids); j++ {
			a, b := solids[i], solids[j]
			ca, _ := s.colliders.Get(a)
			cb, _ := s.colliders.Get(b)
			ta, okA := s.transforms.Get(a)
			tb, okB := s.transforms.Get(b)
			if !okA || !okB {
				continue
			}
			if physics.ResolvePair(&ta, &tb, ca.Shape, cb.Shape) {
				s.transforms.Add(a, ta)
				s.transforms.Add(b, tb)
			}
		}
	}
}

func (s *PhysicsSystem) solidEntities() []core.Entity {
	all := s.colliders.All()
	solids := all[:0]
	for _, e := range all {
		if c, ok := s.colliders.Get(e); ok && c.Solid {
			solids = append(solids, e)
		}
	}
	return solids
}

func (s *PhysicsSystem) clampToArena() {
	for _, e := range s.colliders.All() {
		c, _ := s.colliders.Get(e)
		s.transforms.Update(e, func(tf *component.TransformComponent) {
			physics.ClampToArena(tf, c.Shape, s.arena.Width, s.arena.Height)
		})
	}
}

// anchorHitboxes repositions owner-following attack shapes after all body
// movement settled, so combat tests against final positions.
func (s *PhysicsSystem) anchorHitboxes() {
	for _, e := range s.hitboxes.All() {
		hb, _ := s.hitboxes.Get(e)
		if !hb.FollowOwner {
			continue
		}
		ownerTf, ok := s.transforms.Get(hb.Owner)
		if !ok {
			continue
		}
		s.transforms.Update(e, func(tf *component.TransformComponent) {
			tf.PosX = ownerTf.PosX + hb.OffsetX
			tf.PosY = ownerTf.PosY + hb.OffsetY
		})
	}
}
