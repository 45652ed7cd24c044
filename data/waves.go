package data

import (
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// Archetype is one hostile unit template. MinWave gates when the wave
// director may pick it.
type Archetype struct {
	Name  string
	Glyph rune

	Health int64
	Speed  int64
	Damage int64

	MinWave int
}

// Archetypes is the enemy roster, roughly ordered by threat.
var Archetypes = []Archetype{
	{
		Name:    "Wolters",
		Glyph:   'w',
		Health:  vmath.FromInt(30),
		Speed:   parameter.EnemyBaseSpeed,
		Damage:  parameter.EnemyBaseDamage,
		MinWave: 1,
	},
	{
		Name:    "Librarian",
		Glyph:   'l',
		Health:  vmath.FromInt(35),
		Speed:   vmath.Mul(parameter.EnemyBaseSpeed, vmath.FromFloat(1.3)),
		Damage:  parameter.EnemyBaseDamage,
		MinWave: 2,
	},
	{
		Name:    "Prefect",
		Glyph:   'p',
		Health:  vmath.FromInt(40),
		Speed:   parameter.EnemyBaseSpeed,
		Damage:  vmath.Mul(parameter.EnemyBaseDamage, vmath.FromFloat(1.4)),
		MinWave: 3,
	},
	{
		Name:    "Chef",
		Glyph:   'c',
		Health:  vmath.FromInt(50),
		Speed:   vmath.Mul(parameter.EnemyBaseSpeed, vmath.FromFloat(0.8)),
		Damage:  vmath.Mul(parameter.EnemyBaseDamage, vmath.FromFloat(1.8)),
		MinWave: 5,
	},
}

// WaveBudget is the number of spawns a wave may make.
func WaveBudget(wave int) int {
	return 3 + wave
}

// HealthScale grows enemy health pools with the wave number.
func HealthScale(wave int) int64 {
	return vmath.Scale + vmath.Mul(vmath.FromFloat(0.2), vmath.FromInt(wave-1))
}

// DamageScale grows enemy damage with the wave number, slower than health.
func DamageScale(wave int) int64 {
	return vmath.Scale + vmath.Mul(vmath.FromFloat(0.1), vmath.FromInt(wave-1))
}

// UnlockedArchetypes returns the slice of roster indices pickable at the
// given wave. At least the first archetype is always available.
func UnlockedArchetypes(wave int) []int {
	out := make([]int, 0, len(Archetypes))
	for i, a := range Archetypes {
		if wave >= a.MinWave {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}
