package physics

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the persisted tunable record for a World. Bodies are never part
// of this format; the owning scene recreates them after decode.
type Config struct {
	Gravity            Vec2 `yaml:"gravity"`
	VelocityIterations int  `yaml:"velocity_iterations"`
	PositionIterations int  `yaml:"position_iterations"`
}

// DefaultConfig returns the tunables used when no file is present.
func DefaultConfig() Config {
	return Config{
		Gravity:            Vec2{X: 0, Y: -9.81},
		VelocityIterations: 8,
		PositionIterations: 3,
	}
}

// DecodeConfig parses a YAML tunable record. Malformed or unknown fields and
// negative iteration counts return an error; no partial Config is usable.
func DecodeConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode physics config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode serializes the record to YAML.
func (c Config) Encode() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode physics config: %w", err)
	}
	return out, nil
}

func (c Config) validate() error {
	if c.VelocityIterations < 0 {
		return fmt.Errorf("physics config: velocity_iterations must be >= 0, got %d", c.VelocityIterations)
	}
	if c.PositionIterations < 0 {
		return fmt.Errorf("physics config: position_iterations must be >= 0, got %d", c.PositionIterations)
	}
	return nil
}
