// SPDX-License-Identifier: EPL-2.0

package clip

import "github.com/K2976/Flow/synth"

// MaxImportSeconds caps the length of clips built from audio files.
const MaxImportSeconds = 120.0

type options struct {
	sampleRate  int
	target      float64
	maxSeconds  float64
	fadeSeconds float64
	synthOpts   []synth.Option
}

func defaultOptions() options {
	return options{
		sampleRate:  synth.SampleRate,
		target:      synth.TargetDuration,
		maxSeconds:  MaxImportSeconds,
		fadeSeconds: synth.FadeSeconds,
	}
}

// Option tunes clip construction.
type Option func(*options)

// WithSampleRate sets the output sample rate.
func WithSampleRate(rate int) Option {
	return func(o *options) { o.sampleRate = rate }
}

// WithTargetDuration sets the loop length generated clips are aligned
// around.
func WithTargetDuration(seconds float64) Option {
	return func(o *options) { o.target = seconds }
}

// WithMaxSeconds caps clips built by FromSource.
func WithMaxSeconds(seconds float64) Option {
	return func(o *options) { o.maxSeconds = seconds }
}

// WithFadeSeconds sets the boundary fade applied to clips built by
// FromSource. Generated clips take their fade from the synth options.
func WithFadeSeconds(seconds float64) Option {
	return func(o *options) { o.fadeSeconds = seconds }
}

// WithSynthOptions forwards options to synth.Synthesize.
func WithSynthOptions(opts ...synth.Option) Option {
	return func(o *options) { o.synthOpts = append(o.synthOpts, opts...) }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
