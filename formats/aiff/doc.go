// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files into an audio.Source.
//
// Parsing is done by github.com/go-audio/aiff. Inputs that cannot seek are
// buffered in memory first because the parser jumps between chunks.
//
// AIFF differs from WAV in byte order (big-endian) and in storing the
// sample rate as an 80-bit extended float. Both details are handled by the
// parser; callers only see normalised float32 samples.
package aiff
