// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src into a single interleaved buffer.
// maxFrames > 0 stops the read once that many frames are collected; the
// remainder of the stream is left unread.
func ReadAll(src Source, maxFrames int) ([]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	limit := -1
	if maxFrames > 0 {
		limit = maxFrames * channels
	}

	var out []float32
	buf := make([]float32, size)

	for limit < 0 || len(out) < limit {
		want := buf
		if limit > 0 && limit-len(out) < len(want) {
			want = buf[:limit-len(out)]
		}

		n, err := src.ReadSamples(want)
		out = append(out, want[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	// Keep whole frames only.
	out = out[:len(out)-len(out)%channels]

	return out, nil
}
