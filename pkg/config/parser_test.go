package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"OutputPathPrefix": "out/probe",
		"LineLoops": 5,
		"L2Threshold": 2.5,
		"PinCPU": false
	}`), 0644))

	cfg := ReadConfigurationFile(path)

	// Overridden fields.
	assert.Equal(t, "out/probe", cfg.OutputPathPrefix)
	assert.Equal(t, 5, cfg.LineLoops)
	assert.Equal(t, 2.5, cfg.L2Threshold)
	assert.False(t, cfg.PinCPU)

	// Untouched fields keep their defaults.
	assert.Equal(t, 16*1024*1024, cfg.LineBufferBytes)
	assert.Equal(t, 26, cfg.MaxShift)
	assert.Equal(t, 1024, cfg.L1StartElements)

	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigurationIsValid(t *testing.T) {
	cfg := DefaultConfiguration()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadTunings(t *testing.T) {
	tests := []struct {
		testName string
		mutate   func(cfg *ProbeConfiguration)
	}{
		{"non_pow2_buffer", func(cfg *ProbeConfiguration) { cfg.LineBufferBytes = 3000000 }},
		{"empty_line_range", func(cfg *ProbeConfiguration) { cfg.LineMinShift = 18 }},
		{"stride_past_buffer", func(cfg *ProbeConfiguration) { cfg.LineMaxShift = 25 }},
		{"empty_capacity_range", func(cfg *ProbeConfiguration) { cfg.MaxShift = 7 }},
		{"zero_loops", func(cfg *ProbeConfiguration) { cfg.LevelLoops = 0 }},
		{"negative_threshold", func(cfg *ProbeConfiguration) { cfg.L1Threshold = -1 }},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			cfg := DefaultConfiguration()
			test.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
