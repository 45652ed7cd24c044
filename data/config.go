package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// Config is the optional tuning overlay loaded from YAML. Every field is a
// pointer so absent keys leave the built-in defaults untouched.
type Config struct {
	Arena struct {
		Width  *float64 `yaml:"width"`
		Height *float64 `yaml:"height"`
	} `yaml:"arena"`

	Player struct {
		MaxHealth *float64 `yaml:"max_health"`
		BaseSpeed *float64 `yaml:"base_speed"`
	} `yaml:"player"`

	Enemy struct {
		BaseSpeed  *float64 `yaml:"base_speed"`
		BaseDamage *float64 `yaml:"base_damage"`
	} `yaml:"enemy"`

	Economy struct {
		KillRewardPerWave *int `yaml:"kill_reward_per_wave"`
	} `yaml:"economy"`
}

// LoadConfig reads and applies a YAML tuning file. A missing path is not an
// error; a malformed file is.
func LoadConfig(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.Apply()
	return nil
}

// Apply writes the present overrides into the parameter tables. Call before
// the world is built; parameters are read-only afterwards.
func (c *Config) Apply() {
	setFixed := func(dst *int64, src *float64) {
		if src != nil {
			*dst = vmath.FromFloat(*src)
		}
	}
	setFixed(&parameter.ArenaWidth, c.Arena.Width)
	setFixed(&parameter.ArenaHeight, c.Arena.Height)
	setFixed(&parameter.PlayerMaxHealth, c.Player.MaxHealth)
	setFixed(&parameter.PlayerBaseSpeed, c.Player.BaseSpeed)
	setFixed(&parameter.EnemyBaseSpeed, c.Enemy.BaseSpeed)
	setFixed(&parameter.EnemyBaseDamage, c.Enemy.BaseDamage)
	if c.Economy.KillRewardPerWave != nil {
		parameter.KillRewardPerWave = int64(*c.Economy.KillRewardPerWave)
	}
}
