// Package config loads the inspector's optional scenario file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario drives the inspector's churn loop. Every field has a
// default, so running without a file works.
type Scenario struct {
	Keys         int    `yaml:"keys"`           // distinct store keys written
	Views        int    `yaml:"views"`          // distinct interned view names
	ChurnPerTick int    `yaml:"churn_per_tick"` // operations per tick
	TickMs       int    `yaml:"tick_ms"`
	RingSize     uint64 `yaml:"ring_size"` // must be a power of two
	Seed         int64  `yaml:"seed"`
	LogPath      string `yaml:"log_path"`
}

func Default() Scenario {
	return Scenario{
		Keys:         64,
		Views:        8,
		ChurnPerTick: 16,
		TickMs:       250,
		RingSize:     1024,
		Seed:         1,
		LogPath:      "inspector.log",
	}
}

// Load reads a scenario file, falling back to defaults when the file
// does not exist. Fields absent from the file keep their defaults.
func Load(path string) (Scenario, error) {
	sc := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sc, nil
		}
		return Scenario{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := sc.validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func (sc Scenario) validate() error {
	if sc.Keys <= 0 || sc.Views <= 0 || sc.ChurnPerTick <= 0 {
		return fmt.Errorf("keys, views and churn_per_tick must be positive")
	}
	if sc.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive (got %d)", sc.TickMs)
	}
	if sc.RingSize == 0 || sc.RingSize&(sc.RingSize-1) != 0 {
		return fmt.Errorf("ring_size must be a power of two (got %d)", sc.RingSize)
	}
	return nil
}

// Tick returns the churn interval as a duration.
func (sc Scenario) Tick() time.Duration {
	return time.Duration(sc.TickMs) * time.Millisecond
}
