// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidLayer indicates a LayerConfig that cannot be synthesized.
	ErrInvalidLayer = errors.New("invalid layer config")

	// ErrInvalidDuration indicates a non-positive or non-finite clip duration.
	ErrInvalidDuration = errors.New("clip duration must be positive")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
