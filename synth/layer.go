// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

const (
	// SampleRate is the fixed rate of every generated clip, in Hz.
	SampleRate = 44100

	// TargetDuration is the requested loop length in seconds before alignment.
	TargetDuration = 30.0

	// SwellHz is the nominal swell envelope rate before loop alignment.
	SwellHz = 0.07

	// FadeSeconds is the length of the linear fade at each clip boundary.
	FadeSeconds = 0.05

	// BrownLeak is the feedback coefficient of the brown-noise integrator.
	BrownLeak = 0.995
)

// LayerConfig describes one ambient layer. The left ear hears CarrierHz and
// the right ear CarrierHz+BeatHz; the listener perceives BeatHz.
type LayerConfig struct {
	CarrierHz      float64 `yaml:"carrier_hz" json:"carrier_hz"`
	BeatHz         float64 `yaml:"beat_hz" json:"beat_hz"`
	ToneAmplitude  float64 `yaml:"tone_amplitude" json:"tone_amplitude"`
	NoiseAmplitude float64 `yaml:"noise_amplitude" json:"noise_amplitude"`
	// Warmth is the weight of the second harmonic.
	Warmth float64 `yaml:"warmth" json:"warmth"`
	// Seed feeds the noise generators; zero selects the package default.
	Seed uint64 `yaml:"seed" json:"seed"`
}

var (
	// Calm is the low-load alpha-range layer.
	Calm = LayerConfig{
		CarrierHz:      432,
		BeatHz:         10,
		ToneAmplitude:  0.18,
		NoiseAmplitude: 0.015,
		Warmth:         0.04,
		Seed:           0xC0FFEE,
	}

	// Stress is the high-load gamma-range layer.
	Stress = LayerConfig{
		CarrierHz:      200,
		BeatHz:         40,
		ToneAmplitude:  0.22,
		NoiseAmplitude: 0.035,
		Warmth:         0.015,
		Seed:           0xBADA55,
	}
)

// LeftHz returns the left channel carrier frequency.
func (c LayerConfig) LeftHz() float64 { return c.CarrierHz }

// RightHz returns the right channel carrier frequency.
func (c LayerConfig) RightHz() float64 { return c.CarrierHz + c.BeatHz }

// Validate reports whether c can be synthesized.
func (c LayerConfig) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"carrier_hz", c.CarrierHz},
		{"beat_hz", c.BeatHz},
		{"tone_amplitude", c.ToneAmplitude},
		{"noise_amplitude", c.NoiseAmplitude},
		{"warmth", c.Warmth},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidLayer, f.name)
		}
	}

	if c.CarrierHz <= 0 {
		return fmt.Errorf("%w: carrier_hz must be > 0, got %v", ErrInvalidLayer, c.CarrierHz)
	}
	if c.RightHz() <= 0 {
		return fmt.Errorf("%w: carrier_hz + beat_hz must be > 0, got %v", ErrInvalidLayer, c.RightHz())
	}

	for _, f := range fields[2:] {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrInvalidLayer, f.name, f.v)
		}
	}

	return nil
}

// LoopDuration returns the phase-continuous clip length for c closest to
// target seconds.
func (c LayerConfig) LoopDuration(target float64) float64 {
	return AlignDuration(c.LeftHz(), c.RightHz(), target)
}

// FrameCount returns the number of frames in a clip of duration seconds.
func FrameCount(duration, sampleRate float64) int {
	return int(math.Round(duration * sampleRate))
}
