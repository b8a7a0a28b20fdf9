// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/K2976/Flow/audio"
	"github.com/K2976/Flow/formats/internal/pcm"
	gowav "github.com/go-audio/wav"
)

const formatPCM = 1

// Decoder decodes 16-bit PCM WAV streams through go-audio/wav.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := open(r)
	if err != nil {
		return nil, err
	}

	return pcm.NewSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)), nil
}

// Info describes a decoded WAV container.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
}

// ReadPCM16 decodes a whole 16-bit PCM WAV and returns its header fields and
// interleaved samples. The data chunk is read exactly as its size field
// declares.
func ReadPCM16(r io.Reader) (Info, []int16, error) {
	dec, err := open(r)
	if err != nil {
		return Info{}, nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	info := Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	if len(buf.Data)%info.Channels != 0 {
		return Info{}, nil, fmt.Errorf("%w: %d samples, %d channels", ErrChannelMismatch, len(buf.Data), info.Channels)
	}
	info.Frames = len(buf.Data) / info.Channels

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	return info, samples, nil
}

func open(r io.Reader) (*gowav.Decoder, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.NumChans < 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.WavAudioFormat != formatPCM || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	return dec, nil
}
