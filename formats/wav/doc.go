// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV containers.
//
// Ambient clips are handed to the playback backend as WAV bytes, and the
// backend trusts the chunk sizes it finds, so the writer always produces the
// canonical 44-byte header followed by one data chunk:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (linear PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     sample rate * channels * 2
//	32      2     channels * 2
//	34      2     16
//	36      4     "data"
//	40      4     frames * channels * 2
//	44      ...   interleaved little-endian int16 samples
//
// # Writing
//
//	samples := []int16{100, -100, 200, -200} // two stereo frames
//	err := wav.WriteWAV16(file, 44100, 2, samples)
//
// # Reading
//
// Decoding goes through github.com/go-audio/wav, which walks the chunk list
// instead of assuming a fixed layout. Decoder returns an audio.Source for
// streaming; ReadPCM16 loads a whole file:
//
//	info, samples, err := wav.ReadPCM16(bytes.NewReader(data))
//
// Only 16-bit linear PCM is accepted; other encodings return
// ErrOnlyPCM16bitSupported and non-RIFF input returns ErrNotWavFile.
package wav
