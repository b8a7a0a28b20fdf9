// SPDX-License-Identifier: EPL-2.0

// Package config loads the flowaudio YAML configuration over built-in
// defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/K2976/Flow/synth"
)

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Audio    AudioConfig  `yaml:"audio"`
	Layers   LayersConfig `yaml:"layers"`
	Mixer    MixerConfig  `yaml:"mixer"`
	Server   ServerConfig `yaml:"server"`
}

type AudioConfig struct {
	// Enabled false runs the mixer without an output device.
	Enabled    bool          `yaml:"enabled"`
	BufferSize time.Duration `yaml:"buffer_size"`
}

// LayerSpec is a synthesized layer, or an imported one when File is set.
type LayerSpec struct {
	synth.LayerConfig `yaml:",inline"`

	File string `yaml:"file"`
}

type LayersConfig struct {
	Calm   LayerSpec `yaml:"calm"`
	Stress LayerSpec `yaml:"stress"`

	// TargetDuration is the loop length synthesized layers are aligned
	// around, in seconds.
	TargetDuration   float64 `yaml:"target_duration"`
	MaxImportSeconds float64 `yaml:"max_import_seconds"`
}

type MixerConfig struct {
	InitialCalmVolume      float32       `yaml:"initial_calm_volume"`
	EventChimeRestore      time.Duration `yaml:"event_chime_restore"`
	CompletionChimeRestore time.Duration `yaml:"completion_chime_restore"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the production configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Audio: AudioConfig{
			Enabled: true,
		},
		Layers: LayersConfig{
			Calm:             LayerSpec{LayerConfig: synth.Calm},
			Stress:           LayerSpec{LayerConfig: synth.Stress},
			TargetDuration:   synth.TargetDuration,
			MaxImportSeconds: 120,
		},
		Mixer: MixerConfig{
			InitialCalmVolume:      0.6,
			EventChimeRestore:      150 * time.Millisecond,
			CompletionChimeRestore: 500 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:7733",
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and layer parameters. File-backed layers skip
// the synthesis checks.
func (c Config) Validate() error {
	var errs []error

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	for name, l := range map[string]LayerSpec{"calm": c.Layers.Calm, "stress": c.Layers.Stress} {
		if l.File != "" {
			continue
		}
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("layers.%s: %w", name, err))
		}
	}

	if !(c.Layers.TargetDuration > 0) {
		errs = append(errs, fmt.Errorf("layers.target_duration must be positive, got %v", c.Layers.TargetDuration))
	}
	if !(c.Layers.MaxImportSeconds > 0) {
		errs = append(errs, fmt.Errorf("layers.max_import_seconds must be positive, got %v", c.Layers.MaxImportSeconds))
	}
	if v := c.Mixer.InitialCalmVolume; !(v >= 0 && v <= 1) {
		errs = append(errs, fmt.Errorf("mixer.initial_calm_volume must be within [0,1], got %v", v))
	}
	if c.Mixer.EventChimeRestore <= 0 || c.Mixer.CompletionChimeRestore <= 0 {
		errs = append(errs, errors.New("mixer chime restore delays must be positive"))
	}
	if c.Audio.BufferSize < 0 {
		errs = append(errs, errors.New("audio.buffer_size must not be negative"))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
