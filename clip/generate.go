// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"fmt"
	"math"

	"github.com/K2976/Flow/audio"
	"github.com/K2976/Flow/formats/wav"
	"github.com/K2976/Flow/synth"
)

// Generate aligns, synthesizes and encodes one layer.
func Generate(name string, cfg synth.LayerConfig, opts ...Option) (*Clip, error) {
	o := buildOptions(opts)
	if o.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, o.sampleRate)
	}

	duration := cfg.LoopDuration(o.target)

	frames, err := synth.Synthesize(cfg, duration, float64(o.sampleRate), o.synthOpts...)
	if err != nil {
		return nil, fmt.Errorf("synthesizing %s: %w", name, err)
	}

	data, err := Encode(frames, o.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}

	return newClip(name, o.sampleRate, len(frames), duration, data), nil
}

// FromSource builds a clip from decoded audio. The stream is resampled,
// fitted to stereo, capped at the configured maximum length and faded at
// both ends so it loops without a click. src is not closed.
func FromSource(name string, src audio.Source, opts ...Option) (*Clip, error) {
	o := buildOptions(opts)
	if o.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, o.sampleRate)
	}

	stream := src
	if src.SampleRate() != o.sampleRate {
		stream = audio.NewResampler(stream, o.sampleRate)
	}
	stream = audio.NewStereoMixer(stream)

	limit := 0
	if o.maxSeconds > 0 {
		limit = synth.FrameCount(o.maxSeconds, float64(o.sampleRate))
	}

	samples, err := audio.ReadAll(stream, limit)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyClip)
	}

	frames := make([]synth.Frame, len(samples)/Channels)
	for i := range frames {
		frames[i] = synth.Frame{L: float64(samples[2*i]), R: float64(samples[2*i+1])}
	}
	synth.ApplyBoundaryFade(frames, synth.FrameCount(o.fadeSeconds, float64(o.sampleRate)))

	data, err := Encode(frames, o.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}

	duration := float64(len(frames)) / float64(o.sampleRate)

	return newClip(name, o.sampleRate, len(frames), duration, data), nil
}

// Parse wraps an existing 16-bit stereo WAV container. The bytes are copied.
func Parse(name string, b []byte) (*Clip, error) {
	info, _, err := wav.ReadPCM16(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if info.Channels != Channels || info.BitDepth != BitsPerSample {
		return nil, fmt.Errorf("%w: %d channels, %d-bit", ErrNotStereo, info.Channels, info.BitDepth)
	}
	if info.Frames == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyClip)
	}
	if info.SampleRate <= 0 || info.SampleRate > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, info.SampleRate)
	}

	duration := float64(info.Frames) / float64(info.SampleRate)

	return newClip(name, info.SampleRate, info.Frames, duration, bytes.Clone(b)), nil
}
