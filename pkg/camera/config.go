package camera

import (
	"fmt"
	"strconv"

	"lifeview/pkg/core"
)

// Config holds the zoom limits and input sensitivities of a Camera.
type Config struct {
	ZoomMin float64
	ZoomMax float64

	// ScrollSpeed scales mouse wheel deltas passed to ZoomBy.
	ScrollSpeed float64
	// KeyZoomSpeed is the zoom change per ZoomKey call.
	KeyZoomSpeed float64
	// PanSpeed scales mouse drag deltas (pixels) passed to PanBy.
	PanSpeed float64
	// KeyPanSpeed is the pan change per unit passed to PanKey.
	KeyPanSpeed float64
}

// DefaultConfig returns the standard camera configuration.
func DefaultConfig() Config {
	return Config{
		ZoomMin:      0.25,
		ZoomMax:      10,
		ScrollSpeed:  0.1,
		KeyZoomSpeed: 0.02,
		PanSpeed:     0.001,
		KeyPanSpeed:  0.01,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if !(c.ZoomMin > 0) || !(c.ZoomMin <= c.ZoomMax) {
		return fmt.Errorf("camera: zoom [%g, %g]: %w", c.ZoomMin, c.ZoomMax, core.ErrInvalidZoomBounds)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	fields := map[string]*float64{
		"zoom_min":       &c.ZoomMin,
		"zoom_max":       &c.ZoomMax,
		"scroll_speed":   &c.ScrollSpeed,
		"key_zoom_speed": &c.KeyZoomSpeed,
		"pan_speed":      &c.PanSpeed,
		"key_pan_speed":  &c.KeyPanSpeed,
	}
	for key, dst := range fields {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("camera: parse %s %q: %w", key, v, err)
		}
		*dst = parsed
	}
	return c, c.Validate()
}
