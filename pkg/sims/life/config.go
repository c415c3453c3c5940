package life

import (
	"fmt"
	"strconv"

	"lifeview/pkg/core"
)

// Config holds parameters for the Life grid.
type Config struct {
	Size int
	// Density is the probability that a cell inside the seed region starts
	// alive.
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: 1000, Density: 1.0 / 3.0}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("life: size %d: %w", c.Size, core.ErrInvalidSize)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("life: density %g: %w", c.Density, core.ErrInvalidDensity)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys are ignored; malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("life: parse size %q: %w", v, err)
		}
		c.Size = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("life: parse density %q: %w", v, err)
		}
		c.Density = parsed
	}
	return c, c.Validate()
}
