// SPDX-License-Identifier: EPL-2.0

//go:build headless

package backend

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/mixer"
)

// Device is the headless stand-in for the oto output. It validates and
// loops clips in memory without a sound card and records gains.
type Device struct {
	mu      sync.Mutex
	log     *slog.Logger
	loops   [2]*loop
	gains   [2]float32
	running bool
	closed  bool
}

var _ mixer.Backend = (*Device)(nil)

func Open(opts ...Option) (*Device, error) {
	o := buildOptions(opts)
	o.logger.Info("headless audio device open")

	return &Device{log: o.logger}, nil
}

func (d *Device) Load(l mixer.Layer, c *clip.Clip) error {
	if l != mixer.Calm && l != mixer.Stress {
		return fmt.Errorf("%w: %v", ErrUnknownLayer, l)
	}

	pcm, err := decodeClip(c)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.loops[l] = newLoop(pcm)

	return nil
}

func (d *Device) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	for _, lp := range d.loops {
		if lp != nil {
			_, _ = lp.Seek(0, io.SeekStart)
		}
	}
	d.running = true

	return nil
}

func (d *Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.running = false
	return nil
}

func (d *Device) SetGain(l mixer.Layer, gain float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if l >= 0 && int(l) < len(d.gains) {
		d.gains[l] = gain
	}
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.running = false
	return nil
}

// Gain reports the last gain set for l.
func (d *Device) Gain(l mixer.Layer) float32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.gains[l]
}

// Running reports whether the loops are playing.
func (d *Device) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running
}
