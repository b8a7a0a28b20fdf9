// SPDX-License-Identifier: EPL-2.0

// Package synth renders the binaural ambient layers offline.
//
// A layer is two pure tones, one per ear, a few Hz apart. The listener hears
// the difference as a slow beat. A quiet brown-noise bed and a slow swell
// envelope sit on top of the tones.
//
// # Seamless loops
//
// Clips are played in a loop, so the waveform at the last frame has to lead
// straight back into the first. AlignDuration picks a clip length that holds a
// whole number of cycles of both carriers:
//
//	d := synth.AlignDuration(432, 442, 30) // 30.0: both tones fit exactly
//
// The swell is aligned the same way with AlignFrequency, and the first and
// last 50 ms are faded so any residue left by the noise bed is silent.
//
// # Rendering
//
//	cfg := synth.Calm
//	frames, err := synth.Synthesize(cfg, cfg.LoopDuration(synth.TargetDuration), synth.SampleRate)
//
// Synthesize is pure: the same config and seed always produce the same frames.
// Each call owns its noise generators, so layers can be rendered concurrently.
package synth
