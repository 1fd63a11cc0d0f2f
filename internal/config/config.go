package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Demo defaults, matching the classic interactive setup: a mostly-P
// controller chasing a 90 degree target from north.
const (
	DefaultKp       = 1.0
	DefaultKi       = 0.0
	DefaultKd       = 0.1
	DefaultTarget   = 90.0
	DefaultDt       = 0.1
	DefaultDuration = 60.0
	DefaultMaxRate  = 45.0
	DefaultCap      = 500
)

type Config struct {
	Dt             float64          `yaml:"dt"`
	Duration       float64          `yaml:"duration"`
	InitialHeading float64          `yaml:"initial_heading"`
	MaxTurnRate    float64          `yaml:"max_turn_rate"`
	HistoryCap     int              `yaml:"history_cap"`
	Controller     ControllerConfig `yaml:"controller"`
}

type ControllerConfig struct {
	Kp     float64 `yaml:"kp"`
	Ki     float64 `yaml:"ki"`
	Kd     float64 `yaml:"kd"`
	Target float64 `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		MaxTurnRate: DefaultMaxRate,
		HistoryCap:  DefaultCap,
		Controller: ControllerConfig{
			Kp:     DefaultKp,
			Ki:     DefaultKi,
			Kd:     DefaultKd,
			Target: DefaultTarget,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
