package systems

import (
	"testing"

	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/data"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/event"
)

func shopWorld(seed uint64) (*engine.World, *engine.SessionResource, core.Entity) {
	w := newTestWorld(seed)
	w.AddSystem(NewIntentSystem(w))
	w.AddSystem(NewBuffSystem(w))
	w.AddSystem(NewShopSystem(w))
	player := SpawnPlayer(w, 0)
	session := engine.MustGetResource[*engine.SessionResource](w.Resources)
	session.Phase = core.PhaseShop
	session.ShopOpen = true
	return w, session, player
}

func pushBuy(w *engine.World, slot int) {
	engine.MustGetResource[*engine.IntentQueue](w.Resources).
		Push(core.Intent{Kind: core.IntentBuyUpgrade, Slot: slot})
}

func lastPurchase(t *testing.T, w *engine.World) *event.PurchasePayload {
	t.Helper()
	eq := engine.MustGetResource[*engine.EventQueueResource](w.Resources).Queue
	var last *event.PurchasePayload
	for _, ev := range eq.Consume() {
		if ev.Type == event.EventPurchaseResolved {
			last = ev.Payload.(*event.PurchasePayload)
		}
	}
	if last == nil {
		t.Fatal("Expected a purchase event")
	}
	return last
}

func TestPurchaseDebitsAndAppliesModifier(t *testing.T) {
	w, session, player := shopWorld(1)
	session.Currency = 1000

	pushBuy(w, 0) // attack boost, 150
	step(w, 1)

	if session.Currency != 850 {
		t.Errorf("Expected 850 left, got %d", session.Currency)
	}
	b, _ := w.Components.Buffs.Get(player)
	if b.CountFrom(component.SourceUpgrade, component.StatDamage) != 1 {
		t.Errorf("Expected one upgrade modifier")
	}
	p := lastPurchase(t, w)
	if !p.Accepted || p.Reason != event.PurchaseOK {
		t.Errorf("Expected accepted purchase")
	}
}

func TestInsufficientCurrencyLeavesStateUntouched(t *testing.T) {
	w, session, player := shopWorld(1)
	session.Currency = 30

	pushBuy(w, 0) // costs 150
	step(w, 1)

	if session.Currency != 30 {
		t.Errorf("Rejected purchase must not debit, balance %d", session.Currency)
	}
	b, _ := w.Components.Buffs.Get(player)
	if len(b.Mods) != 0 {
		t.Errorf("Rejected purchase must not modify the stack")
	}
	p := lastPurchase(t, w)
	if p.Accepted || p.Reason != event.RejectInsufficientCurrency {
		t.Errorf("Expected insufficient-currency rejection, got %v", p.Reason)
	}
}

func TestPurchaseCapEnforced(t *testing.T) {
	w, session, player := shopWorld(1)
	session.Currency = 100000
	slot := 5 // life steal, cap 2

	for i := 0; i < 3; i++ {
		pushBuy(w, slot)
		step(w, 1)
	}

	b, _ := w.Components.Buffs.Get(player)
	if got := b.CountFrom(component.SourceUpgrade, data.Upgrades[slot].Stat); got != 2 {
		t.Errorf("Expected cap of 2 copies, got %d", got)
	}
	p := lastPurchase(t, w)
	if p.Accepted || p.Reason != event.RejectPurchaseCap {
		t.Errorf("Third copy must be rejected at the cap")
	}
	wantSpent := int64(2) * data.Upgrades[slot].Cost
	if session.Currency != 100000-wantSpent {
		t.Errorf("Only accepted purchases may debit, spent %d", 100000-session.Currency)
	}
}

func TestInvalidSlotRejected(t *testing.T) {
	w, session, _ := shopWorld(1)
	session.Currency = 1000

	pushBuy(w, 99)
	step(w, 1)

	p := lastPurchase(t, w)
	if p.Accepted || p.Reason != event.RejectInvalidSlot {
		t.Errorf("Expected invalid-slot rejection")
	}
	if session.Currency != 1000 {
		t.Errorf("Invalid slot must not debit")
	}
}

func TestPurchaseOutsideShopPhaseRejected(t *testing.T) {
	w, session, _ := shopWorld(1)
	session.Phase = core.PhaseFighting
	session.Currency = 1000

	pushBuy(w, 0)
	step(w, 1)

	p := lastPurchase(t, w)
	if p.Accepted || p.Reason != event.RejectWrongPhase {
		t.Errorf("Purchases are shop-phase only")
	}
}

func TestHealthUpgradeGrowsPool(t *testing.T) {
	w, session, player := shopWorld(1)
	session.Currency = 1000

	pushBuy(w, 1) // health boost: +20 max
	step(w, 1)

	h, _ := w.Components.Healths.Get(player)
	want := data.Characters[0].MaxHealth + data.Upgrades[1].Add
	if h.Max != want {
		t.Errorf("Expected grown pool")
	}
	if h.Current != want {
		t.Errorf("Pool growth heals by the same amount")
	}
}

func TestUpgradesPersistAcrossTicks(t *testing.T) {
	w, session, player := shopWorld(1)
	session.Currency = 1000

	pushBuy(w, 0)
	step(w, 1)

	// Upgrades have no expiry; a long session keeps them
	step(w, 5000)
	b, _ := w.Components.Buffs.Get(player)
	if b.CountFrom(component.SourceUpgrade, component.StatDamage) != 1 {
		t.Errorf("Shop upgrades must persist for the session")
	}
}
