// SPDX-License-Identifier: EPL-2.0

// Package flow builds the ambient layers for the Flow focus engine.
//
// Two looping layers accompany a work session: a calm alpha-range binaural
// tone and a stress gamma-range one. Each layer is synthesized once at
// startup, phase-aligned so it loops without a seam, and encoded as 16-bit
// stereo WAV. The mixer package then fades between them as the user's
// cognitive-load score changes.
//
// # Quick Start
//
// Render a layer to a file:
//
//	f, _ := os.Create("calm.wav")
//	c, err := flow.RenderLayer(f, "calm", synth.Calm)
//	// c.Duration is 30s, an exact number of beat periods
//
// Build both layers concurrently and hand them to a mixer:
//
//	results := flow.BuildLayers(ctx, []flow.LayerSpec{
//	    {Name: "calm", Config: synth.Calm},
//	    {Name: "stress", Config: synth.Stress},
//	})
//
// A layer may be imported from a recording instead of synthesized by
// setting LayerSpec.File. Supported formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Imported audio is resampled to 44.1 kHz, fitted to stereo, capped in
// length and faded at both ends before encoding.
//
// # Packages
//
//   - synth: noise, loop alignment and signal synthesis
//   - clip: WAV clip construction and parsing
//   - mixer: playback state and gain control
//   - backend: oto audio output
//   - audio, formats/...: decoding pipeline for imported layers
package flow
