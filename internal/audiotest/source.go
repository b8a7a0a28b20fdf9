// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides fakes for exercising the audio pipeline and
// the mixer without files, devices or wall-clock delays.
package audiotest

import (
	"io"
	"math"
)

// Source generates a fixed number of frames from a waveform function and
// satisfies audio.Source.
type Source struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32
	closed      bool
}

// NewSource returns a Source of totalFrames frames whose sample for
// (frame, channel) is waveform(frame, channel).
func NewSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewConstantSource holds every sample at value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(int, int) float32 { return value })
}

// NewSineSource plays the same sine on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, hz float64) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * hz * float64(frame) / float64(sampleRate)))
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds the source to its first frame.
func (s *Source) Reset() { s.generated = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.generated >= s.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.totalFrames-s.generated)
	for f := range frames {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.generated+f, c)
		}
	}
	s.generated += frames

	if s.generated >= s.totalFrames {
		return frames * s.channels, io.EOF
	}

	return frames * s.channels, nil
}
