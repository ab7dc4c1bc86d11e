package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads path and decodes it into out.
func LoadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// LoadSettings reads engine settings from a YAML file. Keys missing from the file keep
// their Default values.
func LoadSettings(path string) (Settings, error) {
	s := Default()
	if err := LoadYAML(path, &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the engine cannot run with.
func (s Settings) Validate() error {
	if s.StepCost <= 0 {
		return fmt.Errorf("step_cost must be positive, got %d", s.StepCost)
	}
	if s.BuffDamageCap < 0 {
		return fmt.Errorf("buff_damage_cap must not be negative, got %d", s.BuffDamageCap)
	}
	if s.MaxConcurrentAttacks <= 0 {
		return fmt.Errorf("max_concurrent_attacks must be positive, got %d", s.MaxConcurrentAttacks)
	}
	return nil
}
