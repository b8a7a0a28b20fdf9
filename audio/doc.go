// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to turn arbitrary
// audio files into ambient layers.
//
// # Source Interface
//
// Every decoder and processor implements Source, so stages chain freely:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. A read that returns
// io.EOF ends the stream; any samples returned alongside it are valid.
//
// # Pipeline
//
// Imported layers are normalised to the engine's output format:
//
//	dec, _ := registry.ForPath("rain.ogg")
//	stream, _ := dec.Decode(file)
//	stereo := audio.NewStereoMixer(audio.NewResampler(stream, 44100))
//	samples, err := audio.ReadAll(stereo, 120*44100)
//
// The Resampler uses Catmull-Rom interpolation with a one-pole low-pass
// ahead of it when downsampling. The StereoMixer duplicates mono input and
// averages layouts wider than two channels.
//
// # Format Registry
//
// Registry keys are case-insensitive and may carry a leading dot, so file
// extensions can be looked up directly. Aliases cover formats with more
// than one common extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("aiff", aiff.Decoder{}, "aif")
package audio
