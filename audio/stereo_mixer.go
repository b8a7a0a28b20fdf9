// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer presents any Source as two interleaved channels.
// Mono input is duplicated into both ears, stereo passes through, and wider
// layouts are averaged down into a centred pair.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }

func (m *StereoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixer source: %w", err)
	}
	return nil
}

func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	if channels == 2 {
		return m.src.ReadSamples(dst)
	}
	if channels < 1 {
		return 0, ErrInvalidChannels
	}

	frames := len(dst) / 2
	need := frames * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	got := n / channels

	if channels == 1 {
		for f := range got {
			v := m.tmp[f]
			dst[2*f] = v
			dst[2*f+1] = v
		}
		return got * 2, err
	}

	inv := 1 / float32(channels)
	for f := range got {
		var sum float32
		base := f * channels
		for c := range channels {
			sum += m.tmp[base+c]
		}
		v := sum * inv
		dst[2*f] = v
		dst[2*f+1] = v
	}

	return got * 2, err
}
