// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package backend

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/mixer"
)

// oto allows a single context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

// Device plays each layer through its own oto player over a looping
// reader. Gains map to Player.SetVolume.
type Device struct {
	mu      sync.Mutex
	ctx     *oto.Context
	log     *slog.Logger
	players [2]*oto.Player
	loops   [2]*loop
	running bool
	closed  bool
}

var _ mixer.Backend = (*Device)(nil)

// Open connects to the default output device at 44.1 kHz stereo 16-bit.
// Failures wrap ErrUnavailable.
func Open(opts ...Option) (*Device, error) {
	o := buildOptions(opts)

	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: Channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   o.bufferSize,
		})
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	if otoErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, otoErr)
	}
	if err := otoCtx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	o.logger.Info("audio device open", "rate", SampleRate, "channels", Channels)

	return &Device{ctx: otoCtx, log: o.logger}, nil
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

	if old := d.players[l]; old != nil {
		_ = old.Close()
	}

	lp := newLoop(pcm)
	p := d.ctx.NewPlayer(lp)
	p.SetVolume(0)
	d.players[l] = p
	d.loops[l] = lp

	if d.running {
		p.Play()
	}

	d.log.Debug("clip loaded", "layer", l, "bytes", len(pcm))

	return nil
}

// Start rewinds every loaded loop and plays it.
func (d *Device) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	if err := d.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	for _, p := range d.players {
		if p == nil {
			continue
		}
		if _, err := p.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewinding loop: %w", err)
		}
		p.Play()
	}
	d.running = true

	return nil
}

func (d *Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.players {
		if p != nil {
			p.Pause()
		}
	}
	d.running = false

	return nil
}

func (d *Device) SetGain(l mixer.Layer, gain float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if l < 0 || int(l) >= len(d.players) || d.players[l] == nil {
		return
	}
	d.players[l].SetVolume(float64(gain))
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	d.running = false

	var firstErr error
	for i, p := range d.players {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing %v player: %w", mixer.Layer(i), err)
		}
		d.players[i] = nil
	}

	return firstErr
}
