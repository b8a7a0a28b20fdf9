// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"encoding/binary"
	"fmt"

	gowav "github.com/go-audio/wav"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/synth"
)

// Device output format.
const (
	SampleRate = synth.SampleRate
	Channels   = clip.Channels
	frameBytes = Channels * 2
)

// decodeClip validates c as a playable container and returns its data
// chunk as little-endian int16 PCM.
func decodeClip(c *clip.Clip) ([]byte, error) {
	if c == nil {
		return nil, ErrNoClip
	}

	dec := gowav.NewDecoder(c.NewReader())
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a WAV container", ErrClipFormat, c.Name)
	}
	if int(dec.SampleRate) != SampleRate || int(dec.NumChans) != Channels || dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %s is %d Hz, %d ch, %d-bit",
			ErrClipFormat, c.Name, dec.SampleRate, dec.NumChans, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrClipFormat, c.Name, err)
	}
	if len(buf.Data) == 0 || len(buf.Data)%Channels != 0 {
		return nil, fmt.Errorf("%w: %s has %d samples", ErrClipFormat, c.Name, len(buf.Data))
	}

	pcm := make([]byte, 2*len(buf.Data))
	for i, v := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v)))
	}

	return pcm, nil
}
