// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/K2976/Flow/audio"
	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
const (
	outputChannels = 2
	bytesPerSample = 2
)

// byteStream is the part of gomp3.Decoder the source needs.
type byteStream interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec        byteStream
	sampleRate int
	buf        []byte
}

func newSource(dec byteStream) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	// ReadFull keeps reads aligned to whole samples across mp3 frames.
	n, err := io.ReadFull(s.dec, s.buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	} else if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("mp3: decoding frame: %w", err)
	}

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return newSource(dec), nil
}
