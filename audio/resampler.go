// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/K2976/Flow/utils"
)

// lowpassAlpha is the one-pole smoothing weight applied to source frames
// when downsampling.
const lowpassAlpha = 0.5

// Resampler streams src at a new sample rate using Catmull-Rom
// interpolation. Channel count is preserved. The output holds
// ceil(frames * dstRate / srcRate) frames.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames advanced per output frame
	channels int

	// win holds four consecutive source frames around pos, which lies
	// between win[1] and win[2]. live marks which slots carry real data.
	win    [4][]float32
	live   [4]bool
	pos    float64
	primed bool

	in  []float32
	eof bool

	smooth bool
	prev   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		in:       make([]float32, max(channels, 1)),
		prev:     make([]float32, max(channels, 1)),
	}
	if dstRate > 0 {
		r.step = float64(src.SampleRate()) / float64(dstRate)
		r.smooth = r.step > 1
	}
	for i := range r.win {
		r.win[i] = make([]float32, max(channels, 1))
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// shift slides the window forward by one source frame.
func (r *Resampler) shift() error {
	first := r.win[0]
	copy(r.win[:3], r.win[1:])
	r.win[3] = first
	copy(r.live[:3], r.live[1:])
	r.live[3] = false

	if r.eof {
		return nil
	}

	n, err := r.src.ReadSamples(r.in[:r.channels])
	if n == r.channels {
		if r.smooth {
			if !r.live[2] && !r.live[1] {
				copy(r.prev, r.in)
			}
			for c := range r.channels {
				r.prev[c] = lowpassAlpha*r.in[c] + (1-lowpassAlpha)*r.prev[c]
			}
			copy(r.win[3], r.prev)
		} else {
			copy(r.win[3], r.in)
		}
		r.live[3] = true
	}

	switch {
	case errors.Is(err, io.EOF), err == nil && n == 0:
		r.eof = true
	case err != nil:
		return fmt.Errorf("reading source frame: %w", err)
	}

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.rate <= 0 || r.src.SampleRate() <= 0 {
		return 0, ErrInvalidRate
	}
	if r.channels < 1 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		for range 3 {
			if err := r.shift(); err != nil {
				return 0, err
			}
		}
		r.primed = true
	}

	ch := r.channels
	frames := len(dst) / ch
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * ch, err
			}
		}

		if !r.live[1] {
			return written * ch, io.EOF
		}

		y1 := r.win[1]
		y2 := y1
		if r.live[2] {
			y2 = r.win[2]
		}
		y0 := y1
		if r.live[0] {
			y0 = r.win[0]
		}
		y3 := y2
		if r.live[3] {
			y3 = r.win[3]
		}

		x := float32(r.pos)
		out := dst[written*ch : (written+1)*ch]
		for c := range ch {
			out[c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], x)
		}

		written++
		r.pos += r.step
	}

	return written * ch, nil
}
