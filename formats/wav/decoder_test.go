// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// encode is a test helper producing a WAV with WriteWAV16.
func encode(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, sampleRate, channels, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	return buf.Bytes()
}

// createWAV8 builds an 8-bit PCM file, which the decoder must reject.
func createWAV8(sampleRate int, samples []byte) []byte {
	buf := new(bytes.Buffer)
	dataSize := uint32(len(samples))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(8))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(samples)

	return buf.Bytes()
}

func TestDecoder_StereoRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32767, 12345, -6789, 1}
	data := encode(t, 44100, 2, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	dst := make([]float32, 64)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		want := float32(s) / 32768.0
		if diff := dst[i] - want; diff < -1e-6 || diff > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], want)
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := encode(t, 8000, 1, []int16{1, 2, 3, 4})

	// io.MultiReader hides the Seek method of bytes.Reader.
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("format = %d Hz / %d ch, want 8000 Hz / 1 ch", src.SampleRate(), src.Channels())
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"not riff", []byte("NOT A WAV FILE AT ALL, JUST SOME BYTES OF TEXT"), ErrNotWavFile},
		{"truncated", []byte("RIFF\x00"), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"eight bit", createWAV8(8000, []byte{128, 130, 126, 128}), ErrOnlyPCM16bitSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadPCM16(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 2*1000)
	for i := range samples {
		samples[i] = int16((i*37)%65535 - 32767)
	}
	data := encode(t, 44100, 2, samples)

	info, got, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}

	want := Info{SampleRate: 44100, Channels: 2, BitDepth: 16, Frames: 1000}
	if info != want {
		t.Errorf("info = %+v, want %+v", info, want)
	}
	if !equalInt16(got, samples) {
		t.Error("samples differ after round trip")
	}
}

func TestReadPCM16_TrustsDataChunkSize(t *testing.T) {
	t.Parallel()

	data := encode(t, 44100, 2, []int16{1, 2, 3, 4})
	// Trailing bytes outside the data chunk must not be read as samples.
	data = append(data, 0xAA, 0xBB, 0xCC, 0xDD)

	info, got, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}
	if info.Frames != 2 || len(got) != 4 {
		t.Errorf("frames = %d, samples = %d, want 2 and 4", info.Frames, len(got))
	}
}

func equalInt16(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func BenchmarkReadPCM16(b *testing.B) {
	samples := make([]int16, 44100*2)
	buf := new(bytes.Buffer)
	_ = WriteWAV16(buf, 44100, 2, samples)
	data := buf.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = ReadPCM16(bytes.NewReader(data))
	}
}
