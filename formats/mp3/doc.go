// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// The underlying decoder always emits stereo, so mono files arrive with
// both channels identical. Samples are normalised by 32768.
package mp3
