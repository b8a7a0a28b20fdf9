// SPDX-License-Identifier: EPL-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K2976/Flow/synth"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, synth.Calm, cfg.Layers.Calm.LayerConfig)
	assert.Equal(t, synth.Stress, cfg.Layers.Stress.LayerConfig)
	assert.InDelta(t, 0.6, cfg.Mixer.InitialCalmVolume, 1e-6)
	assert.Equal(t, 150*time.Millisecond, cfg.Mixer.EventChimeRestore)
	assert.Equal(t, 500*time.Millisecond, cfg.Mixer.CompletionChimeRestore)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
log_level: debug
audio:
  enabled: false
layers:
  calm:
    carrier_hz: 220
    beat_hz: 6
  stress:
    file: rain.ogg
  target_duration: 12
mixer:
  initial_calm_volume: 0.5
  event_chime_restore: 200ms
server:
  addr: ":9000"
`))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 220, cfg.Layers.Calm.CarrierHz, 0)
	assert.InDelta(t, 6, cfg.Layers.Calm.BeatHz, 0)
	// Unset calm fields keep the preset.
	assert.InDelta(t, synth.Calm.ToneAmplitude, cfg.Layers.Calm.ToneAmplitude, 0)
	assert.Equal(t, "rain.ogg", cfg.Layers.Stress.File)
	assert.InDelta(t, 12, cfg.Layers.TargetDuration, 0)
	assert.InDelta(t, 0.5, cfg.Mixer.InitialCalmVolume, 1e-6)
	assert.Equal(t, 200*time.Millisecond, cfg.Mixer.EventChimeRestore)
	assert.Equal(t, 500*time.Millisecond, cfg.Mixer.CompletionChimeRestore)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "volume: 11\n"},
		{"bad level", "log_level: loud\n"},
		{"negative carrier", "layers:\n  calm:\n    carrier_hz: -5\n"},
		{"tone above one", "layers:\n  stress:\n    tone_amplitude: 1.5\n"},
		{"calm volume", "mixer:\n  initial_calm_volume: 2\n"},
		{"zero restore", "mixer:\n  event_chime_restore: 0s\n"},
		{"zero target", "layers:\n  target_duration: 0\n"},
		{"no addr", "server:\n  addr: \"\"\n"},
		{"bad duration", "mixer:\n  event_chime_restore: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestValidate_FileLayerSkipsSynthChecks(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Layers.Calm = LayerSpec{File: "forest.wav"}
	require.NoError(t, cfg.Validate())

	cfg.Layers.Calm.File = ""
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	require.ErrorIs(t, cfg.Validate(), synth.ErrInvalidLayer)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
