package boids

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is everything needed to build a World: the world geometry, the
// flock size and the initial parameter set.
type Config struct {
	// Bound is the side length of the square world.
	Bound float64 `json:"bound"`

	// NumBoids is the flock size. Boids are created once at start and
	// never added or destroyed during a run.
	NumBoids int `json:"numBoids"`

	// AddNoise enables the per-axis heading perturbation after each move.
	AddNoise bool `json:"addNoise"`

	Params Params `json:"params"`
}

// DefaultConfig mirrors the reference setup: a 1000x1000 world with 50 boids.
func DefaultConfig() *Config {
	return &Config{
		Bound:    1000,
		NumBoids: 50,
		AddNoise: true,
		Params:   DefaultParams(),
	}
}

// Validate checks the world geometry and delegates to Params.Validate.
func (c *Config) Validate() error {
	if c.Bound <= 0 {
		return fmt.Errorf("bound must be > 0, got %v", c.Bound)
	}
	if c.NumBoids < 0 {
		return fmt.Errorf("numBoids must be >= 0, got %d", c.NumBoids)
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Schema validation wants the generic decoded form.
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
