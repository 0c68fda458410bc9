package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			DASMs:       200,
			ARRMs:       40,
			SoftDropMs:  50,
			LineFlashMs: 100,
		},
		Input: InputConfig{
			ReleaseTimeoutMs: 150,
		},
	}
}
