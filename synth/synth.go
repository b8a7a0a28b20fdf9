// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Frame is one stereo sample pair in [-1, 1].
type Frame struct {
	L, R float64
}

type options struct {
	swellHz     float64
	fadeSeconds float64
	seed        uint64
}

// Option tunes Synthesize.
type Option func(*options)

// WithSwellHz overrides the nominal swell rate. The rate is still aligned to
// the clip duration.
func WithSwellHz(hz float64) Option {
	return func(o *options) { o.swellHz = hz }
}

// WithFadeSeconds overrides the boundary fade length.
func WithFadeSeconds(seconds float64) Option {
	return func(o *options) { o.fadeSeconds = seconds }
}

// WithSeed overrides LayerConfig.Seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// Synthesize renders duration seconds of cfg at sampleRate.
//
// Per frame it sums a warm carrier per ear, an independent brown-noise bed per
// ear and a slow swell, then fades both clip edges and clamps to [-1, 1].
// The output is deterministic for a given cfg and seed.
func Synthesize(cfg LayerConfig, duration, sampleRate float64, opts ...Option) ([]Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !isFinite(duration) || duration <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	if !isFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	o := options{
		swellHz:     SwellHz,
		fadeSeconds: FadeSeconds,
		seed:        cfg.Seed,
	}
	for _, opt := range opts {
		opt(&o)
	}

	n := FrameCount(duration, sampleRate)
	if n <= 0 {
		return nil, fmt.Errorf("%w: %v s holds no frames at %v Hz", ErrInvalidDuration, duration, sampleRate)
	}

	frames := make([]Frame, n)

	noiseL := NewNoise(o.seed)
	noiseR := NewNoise(o.seed ^ rightSeedSalt)

	swell := AlignFrequency(o.swellHz, duration)

	// Angular steps per sample; harmonics are integer multiples so they stay
	// aligned with their fundamentals at the loop point.
	wL := 2 * math.Pi * cfg.LeftHz() / sampleRate
	wR := 2 * math.Pi * cfg.RightHz() / sampleRate
	wS := 2 * math.Pi * swell / sampleRate

	var brownL, brownR float64
	for i := range n {
		fi := float64(i)

		left := math.Sin(wL*fi) + cfg.Warmth*math.Sin(2*wL*fi)
		right := math.Sin(wR*fi) + cfg.Warmth*math.Sin(2*wR*fi)
		left *= cfg.ToneAmplitude
		right *= cfg.ToneAmplitude

		brownL = BrownLeak*brownL + (1-BrownLeak)*noiseL.Next()
		brownR = BrownLeak*brownR + (1-BrownLeak)*noiseR.Next()
		left += brownL * cfg.NoiseAmplitude
		right += brownR * cfg.NoiseAmplitude

		env := 0.875 + 0.125*math.Cos(wS*fi)
		frames[i] = Frame{L: left * env, R: right * env}
	}

	ApplyBoundaryFade(frames, FrameCount(o.fadeSeconds, sampleRate))

	for i := range frames {
		frames[i].L = clamp(frames[i].L)
		frames[i].R = clamp(frames[i].R)
	}

	return frames, nil
}

// ApplyBoundaryFade ramps frames linearly from silence over the first fadeLen
// frames and back to silence over the last fadeLen frames. The first and the
// last frame end up exactly zero. fadeLen is capped at half the clip.
func ApplyBoundaryFade(frames []Frame, fadeLen int) {
	n := len(frames)
	if n == 0 || fadeLen <= 0 {
		return
	}
	if fadeLen > n/2 {
		fadeLen = n / 2
	}
	if fadeLen == 0 {
		frames[0] = Frame{}
		return
	}

	inv := 1.0 / float64(fadeLen)
	for i := range fadeLen {
		g := float64(i) * inv
		frames[i].L *= g
		frames[i].R *= g

		j := n - 1 - i
		frames[j].L *= g
		frames[j].R *= g
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
