// SPDX-License-Identifier: EPL-2.0

package flow

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/K2976/Flow/audio"
	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/formats/wav"
	"github.com/K2976/Flow/synth"
)

func TestRenderLayer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c, err := RenderLayer(&buf, "stress", synth.Stress, clip.WithTargetDuration(0.1))
	if err != nil {
		t.Fatalf("RenderLayer() error = %v", err)
	}

	if !bytes.Equal(buf.Bytes(), c.Bytes()) {
		t.Error("written bytes differ from the clip")
	}
	if buf.Len() != 44+4*c.FrameCount {
		t.Errorf("wrote %d bytes, want %d", buf.Len(), 44+4*c.FrameCount)
	}
}

func writeWAV(t *testing.T, name string, rate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, rate, channels, samples); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportLayer(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 22050) // 1s mono at 22.05 kHz
	for i := range samples {
		samples[i] = 8192
	}
	path := writeWAV(t, "hum.WAV", 22050, 1, samples)

	c, err := ImportLayer("calm", path)
	if err != nil {
		t.Fatalf("ImportLayer() error = %v", err)
	}

	if c.SampleRate != 44100 || c.Channels != 2 {
		t.Errorf("clip = %v", c)
	}
	if c.FrameCount != 44100 {
		t.Errorf("FrameCount = %d, want 44100", c.FrameCount)
	}
}

func TestImportLayer_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := ImportLayer("calm", filepath.Join(dir, "song.flac")); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("unknown extension error = %v, want ErrUnknownFormat", err)
	}

	if _, err := ImportLayer("calm", filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("definitely not audio"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportLayer("calm", junk); !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("junk file error = %v, want ErrNotWavFile", err)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, ext := range []string{".wav", ".aif", ".aiff", ".mp3", ".ogg", ".OGG"} {
		if _, ok := reg.Get(ext); !ok {
			t.Errorf("no decoder for %s", ext)
		}
	}
}

func TestBuildLayers_IsolatesFailures(t *testing.T) {
	t.Parallel()

	bad := synth.Calm
	bad.ToneAmplitude = 3

	specs := []LayerSpec{
		{Name: "calm", Config: synth.Calm, Options: []clip.Option{clip.WithTargetDuration(0.5)}},
		{Name: "broken", Config: bad},
		{Name: "stress", Config: synth.Stress, Options: []clip.Option{clip.WithTargetDuration(0.1)}},
		{Name: "file", File: "/nonexistent/rain.ogg"},
	}

	results := BuildLayers(context.Background(), specs)
	if len(results) != len(specs) {
		t.Fatalf("got %d results, want %d", len(results), len(specs))
	}

	for i, r := range results {
		if r.Name != specs[i].Name {
			t.Errorf("result %d name = %q, want %q", i, r.Name, specs[i].Name)
		}
	}

	if results[0].Err != nil || results[0].Clip == nil {
		t.Errorf("calm: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, synth.ErrInvalidLayer) || results[1].Clip != nil {
		t.Errorf("broken: err = %v", results[1].Err)
	}
	if results[2].Err != nil || results[2].Clip == nil {
		t.Errorf("stress: %v", results[2].Err)
	}
	if results[3].Err == nil {
		t.Error("file: expected an error for a missing file")
	}
}

func TestBuildLayers_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := BuildLayers(ctx, []LayerSpec{{Name: "calm", Config: synth.Calm}})
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", results[0].Err)
	}
}
