package generator

import (
	"errors"
	"fmt"

	"warrengen/pkg/engine/rng"
)

// Defaults for room layout.
const (
	DefaultInterval    = 5  // Grid granularity for region bounds and split points
	DefaultMinRoomSize = 10 // Regions at or below this size along the split axis stay whole
)

var (
	// ErrInvalidDimensions is returned when the requested grid size does not
	// line up with the subdivision interval.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrInvalidConfig is returned for unusable interval or room size settings.
	ErrInvalidConfig = errors.New("invalid generator config")
)

// Config controls the BSP room generator
type Config struct {
	Interval    int
	MinRoomSize int

	// Source supplies every random draw. Nil means rng.Default.
	Source *rng.Source
}

// DefaultConfig returns the standard layout settings drawing from rng.Default
func DefaultConfig() Config {
	return Config{
		Interval:    DefaultInterval,
		MinRoomSize: DefaultMinRoomSize,
	}
}

// Validate checks the interval and room size
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval %d must be positive", ErrInvalidConfig, c.Interval)
	}
	if c.MinRoomSize < 2 {
		return fmt.Errorf("%w: minimum room size %d leaves no interior", ErrInvalidConfig, c.MinRoomSize)
	}
	return nil
}

// CheckDimensions verifies that width-1 and height-1 are positive multiples of
// the interval and that the render size is usable.
func (c Config) CheckDimensions(width, height, renderWidth, renderHeight int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, dim := range []struct {
		name  string
		value int
	}{{"width", width}, {"height", height}} {
		extent := dim.value - 1
		if extent <= 0 || extent%c.Interval != 0 {
			return fmt.Errorf("%w: %s-1 = %d is not a positive multiple of %d",
				ErrInvalidDimensions, dim.name, extent, c.Interval)
		}
	}
	if renderWidth <= 0 || renderHeight <= 0 {
		return fmt.Errorf("%w: render size %dx%d must be positive", ErrInvalidDimensions, renderWidth, renderHeight)
	}
	return nil
}

func (c Config) source() *rng.Source {
	if c.Source == nil {
		return rng.Default
	}
	return c.Source
}
