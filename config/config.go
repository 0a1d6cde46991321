package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fpayan/fleetsim/core/metrics"
	"github.com/fpayan/fleetsim/infra/mqtt"
)

// UnitConfig describes one fleet unit in the scenario.
type UnitConfig struct {
	ID         string  `json:"id"`
	Variant    string  `json:"variant"`
	CapacityKg float64 `json:"capacity_kg"`
	Location   string  `json:"location"`
}

// MissionConfig describes one queued mission in the scenario.
type MissionConfig struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	PayloadKg   float64 `json:"payload_kg"`
}

// TelemetryConfig enables MQTT snapshot publishing.
type TelemetryConfig struct {
	Enabled bool        `json:"enabled"`
	MQTT    mqtt.Config `json:"mqtt"`
}

// Config is the full scenario loaded from file.
type Config struct {
	Fleet     []UnitConfig    `json:"fleet"`
	Missions  []MissionConfig `json:"missions"`
	Sim       SimConfig       `json:"sim"`
	Metrics   metrics.Config  `json:"metrics"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

// Load reads the scenario from a YAML or JSON file, applies FLEETSIM_
// environment overrides, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FLEETSIM_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fleetsim_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Sim.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to every nested section.
func (c *Config) SetDefaults() {
	c.Sim.SetDefaults()
	c.Metrics.SetDefaults()
	c.Telemetry.MQTT.SetDefaults()
}

var knownVariants = map[string]bool{
	"rover":       true,
	"drone":       true,
	"submersible": true,
	"amphibian":   true,
}

// Validate checks the fleet and mission definitions.
func (c Config) Validate() error {
	seen := map[string]bool{}
	for _, u := range c.Fleet {
		if !knownVariants[strings.ToLower(u.Variant)] {
			return fmt.Errorf("unit %s: unknown variant %q", u.ID, u.Variant)
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate unit id %q", u.ID)
		}
		seen[u.ID] = true
	}
	seen = map[string]bool{}
	for _, m := range c.Missions {
		if seen[m.ID] {
			return fmt.Errorf("duplicate mission id %q", m.ID)
		}
		seen[m.ID] = true
	}
	if c.Telemetry.Enabled {
		if err := c.Telemetry.MQTT.Validate(); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}
	return nil
}
