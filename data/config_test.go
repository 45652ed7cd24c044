package data

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

func TestConfigOverridesApply(t *testing.T) {
	origW := parameter.ArenaWidth
	origHP := parameter.PlayerMaxHealth
	defer func() {
		parameter.ArenaWidth = origW
		parameter.PlayerMaxHealth = origHP
	}()

	raw := `
arena:
  width: 120
player:
  max_health: 250
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	cfg.Apply()

	if parameter.ArenaWidth != vmath.FromInt(120) {
		t.Errorf("Arena width override not applied")
	}
	if parameter.PlayerMaxHealth != vmath.FromInt(250) {
		t.Errorf("Player health override not applied")
	}
}

func TestConfigAbsentKeysKeepDefaults(t *testing.T) {
	origH := parameter.ArenaHeight
	defer func() { parameter.ArenaHeight = origH }()

	var cfg Config
	if err := yaml.Unmarshal([]byte("arena:\n  width: 90\n"), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	cfg.Apply()

	if parameter.ArenaHeight != origH {
		t.Errorf("Absent key must keep the default")
	}
}

func TestMissingConfigFileIsNotAnError(t *testing.T) {
	if err := LoadConfig("/nonexistent/tuning.yaml"); err != nil {
		t.Errorf("Missing file must be silent, got %v", err)
	}
}

func TestCharacterRosterComplete(t *testing.T) {
	if len(Characters) != 7 {
		t.Fatalf("Expected 7 fighters, got %d", len(Characters))
	}
	for _, c := range Characters {
		if c.Ability.CooldownTicks == 0 {
			t.Errorf("%s: zero cooldown", c.Name)
		}
		if c.Ability.ChargeCost == 0 {
			t.Errorf("%s: zero charge cost", c.Name)
		}
		if c.MaxHealth <= 0 || c.BaseSpeed <= 0 {
			t.Errorf("%s: degenerate base stats", c.Name)
		}
	}
}

func TestCharacterByIndexFallback(t *testing.T) {
	if CharacterByIndex(-1).Name != Characters[0].Name {
		t.Errorf("Negative index must fall back to the first fighter")
	}
	if CharacterByIndex(99).Name != Characters[0].Name {
		t.Errorf("Out-of-range index must fall back to the first fighter")
	}
}

func TestArchetypeUnlockGating(t *testing.T) {
	wave1 := UnlockedArchetypes(1)
	for _, i := range wave1 {
		if Archetypes[i].MinWave > 1 {
			t.Errorf("%s unlocked too early", Archetypes[i].Name)
		}
	}

	all := UnlockedArchetypes(100)
	if len(all) != len(Archetypes) {
		t.Errorf("Late waves must unlock the full roster")
	}
}

func TestWaveScalingGrows(t *testing.T) {
	if HealthScale(1) != vmath.Scale {
		t.Errorf("Wave 1 must be unscaled")
	}
	if HealthScale(5) <= HealthScale(2) {
		t.Errorf("Health scale must grow with waves")
	}
	if DamageScale(5) <= DamageScale(2) {
		t.Errorf("Damage scale must grow with waves")
	}
}
