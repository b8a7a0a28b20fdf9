// SPDX-License-Identifier: EPL-2.0

package backend

import "errors"

var (
	// ErrUnavailable wraps failures to open the output device.
	ErrUnavailable = errors.New("audio backend unavailable")

	// ErrClipFormat is returned by Load for clips that are not 44.1 kHz
	// 16-bit stereo WAV.
	ErrClipFormat = errors.New("clip format not playable")

	ErrNoClip       = errors.New("no clip")
	ErrUnknownLayer = errors.New("unknown layer")
	ErrClosed       = errors.New("backend closed")
)
