package config

import (
	"fmt"
)

// ProbeConfiguration carries every tunable of a probing run. The zero value
// is not usable; start from DefaultConfiguration and override selectively,
// or read a JSON file.
type ProbeConfiguration struct {
	OutputPathPrefix  string `json:"OutputPathPrefix"`
	EnableDiagnostics bool   `json:"EnableDiagnostics"`
	PinCPU            bool   `json:"PinCPU"`

	// Line-size stage: stride sweep 2^LineMinShift..2^LineMaxShift bytes
	// over a fixed byte buffer.
	LineLoops       int     `json:"LineLoops"`
	LineBufferBytes int     `json:"LineBufferBytes"`
	LineMinShift    int     `json:"LineMinShift"`
	LineMaxShift    int     `json:"LineMaxShift"`
	LineThreshold   float64 `json:"LineThreshold"`

	// Capacity stages: working-set sweep 2^LevelMinShift..2^(MaxShift-1)
	// elements over an int buffer of 2^MaxShift elements.
	LevelLoops      int     `json:"LevelLoops"`
	LevelMinShift   int     `json:"LevelMinShift"`
	MaxShift        int     `json:"MaxShift"`
	L1StartElements int     `json:"L1StartElements"`
	L1Threshold     float64 `json:"L1Threshold"`
	L2Threshold     float64 `json:"L2Threshold"`
}

// DefaultConfiguration returns the tuning that detects current commodity
// hardware reliably: thresholds sized to the relative jumps expected at the
// line, L1 and L2 boundaries, and loop counts high enough that at least one
// trial per point is expected to run unperturbed.
func DefaultConfiguration() ProbeConfiguration {
	return ProbeConfiguration{
		OutputPathPrefix:  "data/out",
		EnableDiagnostics: true,
		PinCPU:            true,

		LineLoops:       20,
		LineBufferBytes: 16 * 1024 * 1024,
		LineMinShift:    2,
		LineMaxShift:    17,
		LineThreshold:   4,

		LevelLoops:      10,
		LevelMinShift:   7,
		MaxShift:        26,
		L1StartElements: 1024,
		L1Threshold:     0.5,
		L2Threshold:     1,
	}
}

func (cfg *ProbeConfiguration) Validate() error {
	if cfg.LineBufferBytes <= 0 || cfg.LineBufferBytes&(cfg.LineBufferBytes-1) != 0 {
		return fmt.Errorf("LineBufferBytes %d is not a power of two", cfg.LineBufferBytes)
	}
	if cfg.LineMinShift < 0 || cfg.LineMinShift > cfg.LineMaxShift {
		return fmt.Errorf("line shift range [%d, %d] is empty", cfg.LineMinShift, cfg.LineMaxShift)
	}
	if 1<<cfg.LineMaxShift > cfg.LineBufferBytes {
		return fmt.Errorf("max stride 2^%d exceeds the %d-byte line buffer", cfg.LineMaxShift, cfg.LineBufferBytes)
	}
	if cfg.LevelMinShift < 0 || cfg.LevelMinShift >= cfg.MaxShift {
		return fmt.Errorf("capacity shift range [%d, %d) is empty", cfg.LevelMinShift, cfg.MaxShift)
	}
	if cfg.LineLoops < 1 || cfg.LevelLoops < 1 {
		return fmt.Errorf("loop counts must be positive, got line %d level %d", cfg.LineLoops, cfg.LevelLoops)
	}
	if cfg.LineThreshold <= 0 || cfg.L1Threshold <= 0 || cfg.L2Threshold <= 0 {
		return fmt.Errorf("detection thresholds must be positive")
	}
	return nil
}
