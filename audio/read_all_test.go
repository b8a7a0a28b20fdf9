// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		frames    int
		channels  int
		maxFrames int
		wantLen   int
	}{
		{"whole stream", 10000, 2, 0, 20000},
		{"capped", 10000, 2, 3000, 6000},
		{"cap beyond end", 100, 1, 500, 100},
		{"empty", 0, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadAll(newRampSource(8000, tt.channels, tt.frames), tt.maxFrames)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			for i, v := range got {
				f, c := i/tt.channels, i%tt.channels
				if want := float32(f*10 + c); v != want {
					t.Fatalf("sample %d = %v, want %v", i, v, want)
				}
			}
		})
	}
}

func TestReadAll_Error(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100000, 0.1)
	src.failAfter = 5000

	got, err := ReadAll(src, 0)
	if !errors.Is(err, errMockRead) {
		t.Fatalf("ReadAll() error = %v, want errMockRead", err)
	}
	if len(got) == 0 {
		t.Error("ReadAll() dropped samples read before the failure")
	}
}

func TestReadAll_BadChannels(t *testing.T) {
	t.Parallel()

	if _, err := ReadAll(newConstantSource(8000, 0, 10, 0), 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("ReadAll() error = %v, want ErrInvalidChannels", err)
	}
}
