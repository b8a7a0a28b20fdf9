// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"errors"
	"io"
	"sync"
)

var errWhence = errors.New("invalid whence")

// loop serves PCM bytes endlessly, wrapping from the last frame straight
// back to the first. Reads and seeks stay aligned to whole frames so the
// channels never swap.
type loop struct {
	mu  sync.Mutex
	pcm []byte
	pos int
}

func newLoop(pcm []byte) *loop {
	return &loop{pcm: pcm[:len(pcm)-len(pcm)%frameBytes]}
}

func (l *loop) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(p) - len(p)%frameBytes
	if len(l.pcm) == 0 {
		clear(p[:n])
		return n, nil
	}

	for done := 0; done < n; {
		c := copy(p[done:n], l.pcm[l.pos:])
		done += c
		l.pos = (l.pos + c) % len(l.pcm)
	}

	return n, nil
}

// Seek positions the loop modulo its length. The result is rounded down
// to a frame boundary.
func (l *loop) Seek(offset int64, whence int) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := int64(len(l.pcm))
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(l.pos) + offset
	case io.SeekEnd:
		abs = size + offset
	default:
		return 0, errWhence
	}

	if size == 0 {
		l.pos = 0
		return 0, nil
	}

	abs %= size
	if abs < 0 {
		abs += size
	}
	abs -= abs % frameBytes
	l.pos = int(abs)

	return abs, nil
}

// frame returns the index of the next frame to be read.
func (l *loop) frame() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.pos / frameBytes
}
