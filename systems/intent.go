package systems

import (
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
)

// IntentSystem drains the intent queue into the per-step input view.
// It runs first: every later system reads the same immutable drain result,
// so input observed mid-step can never differ between systems.
type IntentSystem struct {
	world   *engine.World
	intents *engine.IntentQueue
	input   *engine.InputResource
	session *engine.SessionResource
}

func NewIntentSystem(world *engine.World) engine.System {
	return &IntentSystem{
		world:   world,
		intents: engine.MustGetResource[*engine.IntentQueue](world.Resources),
		input:   engine.MustGetResource[*engine.InputResource](world.Resources),
		session: engine.MustGetResource[*engine.SessionResource](world.Resources),
	}
}

func (s *IntentSystem) Priority() int {
	return parameter.PriorityIntent
}

func (s *IntentSystem) Update() {
	s.input.ResetStep()

	for _, intent := range s.intents.Drain() {
		switch intent.Kind {
		case core.IntentMove:
			// Latches until the next Move intent; zero direction releases
			s.input.MoveX = intent.DirX
			s.input.MoveY = intent.DirY
			s.input.Moved = intent.DirX != 0 || intent.DirY != 0
		case core.IntentLightAttack:
			s.input.Light = true
		case core.IntentHeavyAttack:
			s.input.Heavy = true
		case core.IntentSpecialAttack:
			s.input.Special = true
		case core.IntentActivateAbility:
			s.input.Ability = true
		case core.IntentConfirmSelection:
			s.input.Confirm = true
		case core.IntentBuyUpgrade:
			s.input.Purchases = append(s.input.Purchases, intent.Slot)
		case core.IntentToggleShop:
			if s.session.Phase == core.PhaseShop {
				s.session.ShopOpen = !s.session.ShopOpen
			}
		case core.IntentToggleDetails:
			s.session.ShowDetails = !s.session.ShowDetails
		}
	}
}
