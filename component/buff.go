package component

import "github.com/ashenfell/brawlarc/vmath"

// Stat identifies which derived stat a modifier targets.
type Stat uint8

const (
	StatDamage Stat = iota
	StatSpeed
	StatMaxHealth
	StatCooldown
	StatArmor
	StatLifeSteal
)

// BuffSource distinguishes where a modifier came from. Ability buffs expire;
// shop upgrades persist for the session (ExpiresTick zero).
type BuffSource uint8

const (
	SourceAbility BuffSource = iota
	SourceUpgrade
)

// BuffModifier is one entry of an ordered modifier stack. Multiplicative and
// additive parts combine as base × Π(mult) + Σ(add); the base stat is never
// mutated in place.
type BuffModifier struct {
	Source      BuffSource
	Stat        Stat
	Mult        int64  // Q32.32, Scale = neutral; zero treated as neutral
	Add         int64  // Q32.32
	ExpiresTick uint64 // zero = permanent
}

// BuffComponent is the per-entity modifier stack, kept in append order.
type BuffComponent struct {
	Mods []BuffModifier
}

// ExpireAt drops modifiers whose expiry has passed, preserving order.
func (b *BuffComponent) ExpireAt(tick uint64) {
	kept := b.Mods[:0]
	for _, m := range b.Mods {
		if m.ExpiresTick == 0 || m.ExpiresTick > tick {
			kept = append(kept, m)
		}
	}
	b.Mods = kept
}

// Value folds the stack over base for one stat.
func (b *BuffComponent) Value(stat Stat, base int64) int64 {
	mult := int64(vmath.Scale)
	add := int64(0)
	for _, m := range b.Mods {
		if m.Stat != stat {
			continue
		}
		if m.Mult != 0 {
			mult = vmath.Mul(mult, m.Mult)
		}
		add += m.Add
	}
	return vmath.Mul(base, mult) + add
}

// CountFrom returns how many modifiers of the stat came from the source.
// The shop uses this to enforce purchase caps.
func (b *BuffComponent) CountFrom(source BuffSource, stat Stat) int {
	n := 0
	for _, m := range b.Mods {
		if m.Source == source && m.Stat == stat {
			n++
		}
	}
	return n
}
