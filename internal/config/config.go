// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTiming is returned when a timing or input value is out of range.
var ErrInvalidTiming = errors.New("config: invalid timing")

// TetrisConfig contains all tunable settings of the game.
type TetrisConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// TimingConfig holds the session timings in milliseconds.
type TimingConfig struct {
	DASMs       int `yaml:"das_ms"`              // Delay before a held direction repeats
	ARRMs       int `yaml:"arr_ms"`              // Interval between repeated moves
	SoftDropMs  int `yaml:"soft_drop_ms"`        // Gravity interval while soft drop is held
	LineFlashMs int `yaml:"line_clear_flash_ms"` // Line-clear flash duration
}

// InputConfig holds terminal input settings.
type InputConfig struct {
	// ReleaseTimeoutMs is how long after the last key event a held key is
	// considered released. Terminals report no key-up events.
	ReleaseTimeoutMs int `yaml:"release_timeout_ms"`
}

// DAS returns the auto-shift delay.
func (t TimingConfig) DAS() time.Duration { return ms(t.DASMs) }

// ARR returns the auto-repeat interval.
func (t TimingConfig) ARR() time.Duration { return ms(t.ARRMs) }

// SoftDrop returns the soft-drop gravity interval.
func (t TimingConfig) SoftDrop() time.Duration { return ms(t.SoftDropMs) }

// Flash returns the line-clear flash duration.
func (t TimingConfig) Flash() time.Duration { return ms(t.LineFlashMs) }

// ReleaseTimeout returns the inferred key-release timeout.
func (i InputConfig) ReleaseTimeout() time.Duration { return ms(i.ReleaseTimeoutMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate checks that every value is positive and that the release timeout
// is shorter than the auto-shift delay, so a single tap never repeats.
func (c TetrisConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"timing.das_ms", c.Timing.DASMs},
		{"timing.arr_ms", c.Timing.ARRMs},
		{"timing.soft_drop_ms", c.Timing.SoftDropMs},
		{"timing.line_clear_flash_ms", c.Timing.LineFlashMs},
		{"input.release_timeout_ms", c.Input.ReleaseTimeoutMs},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidTiming, f.name, f.value)
		}
	}
	if c.Input.ReleaseTimeoutMs >= c.Timing.DASMs {
		return fmt.Errorf("%w: input.release_timeout_ms (%d) must be below timing.das_ms (%d)",
			ErrInvalidTiming, c.Input.ReleaseTimeoutMs, c.Timing.DASMs)
	}
	return nil
}
