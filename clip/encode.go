// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/K2976/Flow/formats/wav"
	"github.com/K2976/Flow/synth"
	"github.com/K2976/Flow/utils"
)

// maxFrames keeps the RIFF size field (36 + data) within a uint32.
const maxFrames = (math.MaxUint32 - 36) / (Channels * BitsPerSample / 8)

// Encode quantizes frames to 16-bit PCM and wraps them in a canonical WAV
// container. The result is exactly 44 + 4*len(frames) bytes.
func Encode(frames []synth.Frame, sampleRate int) ([]byte, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyClip
	}
	if uint64(len(frames)) > maxFrames {
		return nil, fmt.Errorf("%w: %d frames", ErrClipTooLarge, len(frames))
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	samples := make([]int16, 0, len(frames)*Channels)
	for _, f := range frames {
		samples = append(samples, utils.Float64ToInt16(f.L), utils.Float64ToInt16(f.R))
	}

	buf := bytes.NewBuffer(make([]byte, 0, wav.HeaderSize+wav.DataSize(len(frames), Channels)))
	if err := wav.WriteWAV16(buf, sampleRate, Channels, samples); err != nil {
		if errors.Is(err, wav.ErrDataTooLarge) {
			return nil, fmt.Errorf("%w: %w", ErrClipTooLarge, err)
		}
		return nil, fmt.Errorf("encoding clip: %w", err)
	}

	return buf.Bytes(), nil
}
