// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/mixer"
)

// Backend is an in-memory mixer.Backend that records every call.
// Set LoadErr or StartErr before handing it to mixer.New to inject
// failures.
type Backend struct {
	LoadErr  map[mixer.Layer]error
	StartErr error

	mu      sync.Mutex
	loaded  map[mixer.Layer]*clip.Clip
	gains   map[mixer.Layer]float32
	running bool
	starts  int
	stops   int
	closed  bool
}

func NewBackend() *Backend {
	return &Backend{
		loaded: make(map[mixer.Layer]*clip.Clip),
		gains:  make(map[mixer.Layer]float32),
	}
}

func (b *Backend) Load(l mixer.Layer, c *clip.Clip) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.LoadErr[l]; err != nil {
		return err
	}
	b.loaded[l] = c
	return nil
}

func (b *Backend) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.starts++
	if b.StartErr != nil {
		return b.StartErr
	}
	b.running = true
	return nil
}

func (b *Backend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stops++
	b.running = false
	return nil
}

func (b *Backend) SetGain(l mixer.Layer, gain float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gains[l] = gain
}

func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.running = false
	return nil
}

// Gain is the last gain set for l.
func (b *Backend) Gain(l mixer.Layer) float32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.gains[l]
}

// Loaded returns the clip loaded for l, if any.
func (b *Backend) Loaded(l mixer.Layer) *clip.Clip {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.loaded[l]
}

func (b *Backend) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.running
}

// Calls reports how many times Start and Stop were called.
func (b *Backend) Calls() (starts, stops int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.starts, b.stops
}

func (b *Backend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closed
}
