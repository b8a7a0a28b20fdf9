// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"fmt"
	"time"
)

// Output format of every clip.
const (
	Channels      = 2
	BitsPerSample = 16
)

// Clip is an encoded, loopable WAV layer. It is immutable after
// construction; accessors hand out copies or read-only views of the bytes.
type Clip struct {
	Name          string
	SampleRate    int
	FrameCount    int
	Channels      int
	BitsPerSample int
	// Duration is the aligned loop length in seconds.
	Duration float64

	data []byte
}

func newClip(name string, sampleRate, frames int, duration float64, data []byte) *Clip {
	return &Clip{
		Name:          name,
		SampleRate:    sampleRate,
		FrameCount:    frames,
		Channels:      Channels,
		BitsPerSample: BitsPerSample,
		Duration:      duration,
		data:          data,
	}
}

// Bytes returns a copy of the encoded WAV container.
func (c *Clip) Bytes() []byte {
	return bytes.Clone(c.data)
}

// NewReader returns a reader over the encoded container. Each call gets an
// independent position.
func (c *Clip) NewReader() *bytes.Reader {
	return bytes.NewReader(c.data)
}

// Len is the size of the encoded container in bytes.
func (c *Clip) Len() int { return len(c.data) }

// Length is Duration as a time.Duration.
func (c *Clip) Length() time.Duration {
	return time.Duration(c.Duration * float64(time.Second))
}

func (c *Clip) String() string {
	return fmt.Sprintf("%s: %d Hz, %d ch, %d-bit, %d frames (%.3fs), %d bytes",
		c.Name, c.SampleRate, c.Channels, c.BitsPerSample, c.FrameCount, c.Duration, len(c.data))
}
