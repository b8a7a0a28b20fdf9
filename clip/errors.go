// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	// ErrEmptyClip is returned when there are no frames to encode.
	ErrEmptyClip = errors.New("clip has no frames")

	// ErrClipTooLarge is returned when the PCM data would overflow the
	// 32-bit RIFF size fields.
	ErrClipTooLarge = errors.New("clip too large for a WAV container")

	ErrInvalidSampleRate = errors.New("clip sample rate must be positive")
	ErrNotStereo         = errors.New("clip must be 16-bit stereo")
)
