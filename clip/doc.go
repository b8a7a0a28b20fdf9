// SPDX-License-Identifier: EPL-2.0

// Package clip turns layer parameters or decoded audio into loopable
// 16-bit stereo WAV clips.
//
// Generate runs the full pipeline for a synthesized layer:
//
//	c, err := clip.Generate("calm", synth.Calm)
//	// c.Duration is the loop-aligned length near 30s
//	// c.Len() == 44 + 4*c.FrameCount
//
// FromSource does the same for audio decoded from a file, and Parse wraps
// an existing container after validating it with go-audio/wav.
package clip
