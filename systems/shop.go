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

// ShopSystem resolves upgrade purchases during the shop phase. A purchase
// is a transaction: validation, the currency debit and the modifier append
// either all land in one step or none do, and a rejection leaves every
// piece of state untouched.
type ShopSystem struct {
	world   *engine.World
	input   *engine.InputResource
	session *engine.SessionResource

	buffs   *engine.Store[component.BuffComponent]
	healths *engine.Store[component.HealthComponent]

	statRejected *atomic.Int64
}

func NewShopSystem(world *engine.World) engine.System {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &ShopSystem{
		world:        world,
		input:        engine.MustGetResource[*engine.InputResource](world.Resources),
		session:      engine.MustGetResource[*engine.SessionResource](world.Resources),
		buffs:        world.Components.Buffs,
		healths:      world.Components.Healths,
		statRejected: reg.Ints.Get("shop.rejected"),
	}
}

func (s *ShopSystem) Priority() int {
	return parameter.PriorityShop
}

func (s *ShopSystem) Update() {
	for _, slot := range s.input.Purchases {
		s.resolvePurchase(slot)
	}

	// Confirm leaves the shop and arms the next wave
	if s.session.Phase == core.PhaseShop && s.input.Confirm {
		s.session.Phase = core.PhaseFighting
		s.session.ShopOpen = false
	}
}

func (s *ShopSystem) resolvePurchase(slot int) {
	if s.session.Phase != core.PhaseShop {
		s.reject(slot, event.RejectWrongPhase)
		return
	}
	if !data.ValidSlot(slot) {
		s.reject(slot, event.RejectInvalidSlot)
		return
	}
	up := data.Upgrades[slot]
	player := s.session.Player
	if !s.world.Alive(player) {
		s.reject(slot, event.RejectWrongPhase)
		return
	}

	b, _ := s.buffs.Get(player)
	if b.CountFrom(component.SourceUpgrade, up.Stat) >= up.Cap {
		s.reject(slot, event.RejectPurchaseCap)
		return
	}
	if s.session.Currency < up.Cost {
		s.reject(slot, event.RejectInsufficientCurrency)
		return
	}

	// Commit
	s.session.Currency -= up.Cost
	mod := component.BuffModifier{
		Source: component.SourceUpgrade,
		Stat:   up.Stat,
		Mult:   up.Mult,
		Add:    up.Add,
	}
	if !s.buffs.Update(player, func(bc *component.BuffComponent) {
		bc.Mods = append(bc.Mods, mod)
	}) {
		s.buffs.Add(player, component.BuffComponent{Mods: []component.BuffModifier{mod}})
	}

	// Health upgrades grow the pool immediately; permanent, so the buff
	// pass never reverses them
	if up.Stat == component.StatMaxHealth && up.Add != 0 {
		s.healths.Update(player, func(h *component.HealthComponent) {
			h.RaiseMax(up.Add)
		})
	}

	s.world.PushEvent(event.EventPurchaseResolved, &event.PurchasePayload{
		Slot:     slot,
		Accepted: true,
		Reason:   event.PurchaseOK,
		Cost:     up.Cost,
		Balance:  s.session.Currency,
	})
}

func (s *ShopSystem) reject(slot int, reason event.PurchaseRejection) {
	s.statRejected.Add(1)
	var cost int64
	if data.ValidSlot(slot) {
		cost = data.Upgrades[slot].Cost
	}
	s.world.PushEvent(event.EventPurchaseResolved, &event.PurchasePayload{
		Slot:    slot,
		Reason:  reason,
		Cost:    cost,
		Balance: s.session.Currency,
	})
}
