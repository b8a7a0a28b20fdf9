// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")

	// ErrChannelMismatch indicates a sample slice that does not hold whole frames.
	ErrChannelMismatch = errors.New("sample count must be a multiple of channels")

	// ErrDataTooLarge indicates PCM data that overflows the 32-bit RIFF size fields.
	ErrDataTooLarge = errors.New("PCM data too large for a RIFF container")
)
