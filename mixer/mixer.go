// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/K2976/Flow/clip"
)

// Score mapping and chime levels.
const (
	calmScoreSpan   = 0.6
	stressScoreSpan = 0.7
	focusCalm       = 0.8
	eventChimeBoost = 0.3
)

// Mixer owns the two ambient layers and maps the load score, focus mode
// and chimes onto per-layer gain. All methods are safe for concurrent use;
// calls are serialised by one lock.
type Mixer struct {
	mu sync.Mutex

	backend Backend
	opts    options
	log     *slog.Logger

	clips  [numLayers]*clip.Clip
	layers [numLayers]Status
	state  PlaybackState

	// gen advances on every write to a layer's volume. A scheduled restore
	// only applies while the generation it captured is still current.
	gen     [numLayers]uint64
	pending map[*restore]struct{}
	closed  bool
}

type restore struct {
	layer  Layer
	volume float32
	gen    uint64
	timer  Timer
}

// New loads clips into backend and returns a stopped mixer. A nil backend
// or a missing clip does not fail construction; the affected layers report
// a non-OK status and the mixer keeps tracking state.
func New(backend Backend, clips map[Layer]*clip.Clip, opts ...Option) *Mixer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Mixer{
		backend: backend,
		opts:    o,
		log:     o.logger.With("component", "mixer"),
		pending: make(map[*restore]struct{}),
	}

	for _, l := range Layers {
		c := clips[l]
		m.clips[l] = c

		switch {
		case c == nil:
			m.layers[l] = StatusEncodingFailed
			m.log.Warn("layer has no clip", "layer", l, "status", StatusEncodingFailed)
		case backend == nil:
			m.layers[l] = StatusBackendUnavailable
		default:
			if err := backend.Load(l, c); err != nil {
				m.layers[l] = StatusBackendUnavailable
				m.log.Warn("loading layer", "layer", l, "err", err)
				continue
			}
			m.log.Debug("layer loaded", "layer", l, "frames", c.FrameCount, "duration", c.Duration)
		}
	}

	if backend == nil {
		m.log.Warn("no audio backend, running silent", "status", StatusBackendUnavailable)
	}

	m.applyGains()

	return m
}

// Start begins playback with the calm layer at its initial level and the
// stress layer silent. It is a no-op when already playing. The state moves
// to playing even when the backend cannot, so the session continues
// silently.
func (m *Mixer) Start() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.IsPlaying {
		return StatusOK
	}

	m.state.IsPlaying = true
	m.setVolume(Calm, m.opts.initialCalm)
	m.setVolume(Stress, 0)

	status := m.startBackend()
	m.applyGains()

	m.log.Info("ambient started", "status", status, "calm", m.state.CalmVolume)

	return status
}

func (m *Mixer) startBackend() Status {
	if m.closed || m.backend == nil {
		return StatusBackendUnavailable
	}

	status := StatusOK
	loaded := 0
	for _, l := range Layers {
		if m.layers[l] == StatusOK {
			loaded++
		}
		status = status.worse(m.layers[l])
	}
	if loaded == 0 {
		return status
	}

	if err := m.backend.Start(); err != nil {
		m.log.Warn("starting backend", "err", err)
		return StatusBackendUnavailable
	}

	return status
}

// Stop halts playback. Pending chime restores are invalidated.
func (m *Mixer) Stop() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsPlaying {
		return StatusOK
	}

	m.state.IsPlaying = false
	m.invalidateRestores()

	status := StatusOK
	if m.closed || m.backend == nil {
		status = StatusBackendUnavailable
	} else if err := m.backend.Stop(); err != nil {
		m.log.Warn("stopping backend", "err", err)
		status = StatusBackendUnavailable
	}

	m.log.Info("ambient stopped", "status", status)

	return status
}

// UpdateForScore maps a load score in [0, 100] onto the layers:
// calm = 1 - 0.6n and stress = 0.7n with n = score/100. Scores outside the
// range are clamped and NaN is ignored. It only applies while playing,
// unmuted and outside focus mode.
func (m *Mixer) UpdateForScore(score float64) {
	if math.IsNaN(score) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsPlaying || m.state.IsMuted || m.state.FocusModeActive {
		return
	}

	n := float32(min(max(score, 0), 100) / 100)
	m.setVolume(Calm, 1-calmScoreSpan*n)
	m.setVolume(Stress, stressScoreSpan*n)
	m.applyGains()
}

// SetFocusMode toggles focus mode. Enabling it pins calm at 0.8 and
// silences stress in any state; disabling it leaves the volumes until the
// next score update.
func (m *Mixer) SetFocusMode(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.FocusModeActive = enabled
	if enabled {
		m.setVolume(Stress, 0)
		m.setVolume(Calm, focusCalm)
		m.applyGains()
	}

	m.log.Debug("focus mode", "enabled", enabled)
}

// PlayEventChime lifts calm by 0.3 (capped at 1) and restores the previous
// level after the event delay. It only applies while playing and unmuted.
func (m *Mixer) PlayEventChime() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsPlaying || m.state.IsMuted {
		return
	}

	v0 := m.state.CalmVolume
	m.setVolume(Calm, min(v0+eventChimeBoost, 1))
	m.applyGains()
	m.scheduleRestore(Calm, v0, m.opts.eventRestore)
}

// PlayCompletionChime drives calm to full and silences stress, then
// restores calm after the completion delay. Stress is left for the next
// score update. It is a no-op while muted.
func (m *Mixer) PlayCompletionChime() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.IsMuted {
		return
	}

	v0 := m.state.CalmVolume
	m.setVolume(Calm, 1)
	m.setVolume(Stress, 0)
	m.applyGains()
	m.scheduleRestore(Calm, v0, m.opts.completionRestore)
}

// SetMuted sets the mute flag. Muting sends zero gain to the backend and
// keeps the logical volumes, which are re-applied on unmute.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.IsMuted == muted {
		return
	}

	m.state.IsMuted = muted
	m.applyGains()

	m.log.Debug("mute", "muted", muted)
}

func (m *Mixer) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.IsMuted
}

// Snapshot returns a copy of the playback state.
func (m *Mixer) Snapshot() PlaybackState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// LayerStatus reports whether layer l has a clip loaded in a working
// backend.
func (m *Mixer) LayerStatus(l Layer) Status {
	if !l.valid() {
		return StatusEncodingFailed
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return StatusBackendUnavailable
	}
	return m.layers[l]
}

// Clip returns the clip owned by layer l, or nil when it failed to build.
func (m *Mixer) Clip(l Layer) *clip.Clip {
	if !l.valid() {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.clips[l]
}

// Close stops playback, cancels pending restores and releases the
// backend. Later calls keep tracking state without sound.
func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.state.IsPlaying = false
	m.invalidateRestores()
	m.closed = true

	if m.backend == nil {
		return nil
	}

	_ = m.backend.Stop()
	return m.backend.Close()
}

// setVolume writes a logical volume and advances the layer's generation.
// Callers hold mu.
func (m *Mixer) setVolume(l Layer, v float32) {
	m.state.setVolume(l, clampUnit(v))
	m.gen[l]++
}

// applyGains pushes the effective gains to the backend. Callers hold mu.
func (m *Mixer) applyGains() {
	if m.backend == nil || m.closed {
		return
	}

	for _, l := range Layers {
		if m.layers[l] != StatusOK {
			continue
		}
		gain := m.state.Volume(l)
		if m.state.IsMuted || !m.state.IsPlaying {
			gain = 0
		}
		m.backend.SetGain(l, gain)
	}
}

// scheduleRestore arranges for layer l to return to v after d, unless
// the layer's volume is written again first. Callers hold mu.
func (m *Mixer) scheduleRestore(l Layer, v float32, d time.Duration) {
	r := &restore{layer: l, volume: v, gen: m.gen[l]}
	m.pending[r] = struct{}{}
	r.timer = m.opts.scheduler.AfterFunc(d, func() { m.fireRestore(r) })
}

func (m *Mixer) fireRestore(r *restore) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pending[r]; !ok {
		return
	}
	delete(m.pending, r)

	if m.gen[r.layer] != r.gen {
		m.log.Debug("stale restore skipped", "layer", r.layer, "scheduled_gen", r.gen, "current_gen", m.gen[r.layer])
		return
	}

	m.setVolume(r.layer, r.volume)
	m.applyGains()
}

// invalidateRestores cancels every pending restore and advances both
// generations. Callers hold mu.
func (m *Mixer) invalidateRestores() {
	for r := range m.pending {
		if r.timer != nil {
			r.timer.Stop()
		}
		delete(m.pending, r)
	}
	for _, l := range Layers {
		m.gen[l]++
	}
}

func clampUnit(v float32) float32 {
	switch {
	case math.IsNaN(float64(v)), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
