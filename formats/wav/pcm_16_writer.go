// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HeaderSize is the length of the canonical RIFF/WAVE header written by WriteWAV16.
const HeaderSize = 44

// maxDataSize keeps 36 + dataSize within a uint32.
const maxDataSize = math.MaxUint32 - (HeaderSize - 8)

// DataSize returns the byte length of the data chunk for frames of 16-bit
// audio with the given channel count.
func DataSize(frames, channels int) int {
	return frames * channels * 2
}

// WriteWAV16 writes a canonical 16-bit PCM WAV at sampleRate. samples holds
// interleaved frames, so its length must be a multiple of channels.
//
// The output is exactly HeaderSize + len(samples)*2 bytes: a RIFF header, a
// 16-byte fmt chunk and a single data chunk, all sizes little-endian.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || channels > math.MaxUint16 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, channels)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrChannelMismatch, len(samples), channels)
	}
	if sampleRate <= 0 || sampleRate > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedWavLayout, sampleRate)
	}
	if uint64(len(samples))*2 > maxDataSize {
		return fmt.Errorf("%w: %d samples", ErrDataTooLarge, len(samples))
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	blockAlign := numChannels * (bitsPerSample / 8)
	byteRate := uint64(sampleRate) * uint64(blockAlign)
	if byteRate > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate %d", ErrUnsupportedWavLayout, byteRate)
	}
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // linear PCM
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Stream the payload in 8K-sample chunks so large clips need one small buffer.
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}
