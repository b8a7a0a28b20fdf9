// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Reads are truncated to whole frames so callers always receive complete
// interleaved frames.
package vorbis
