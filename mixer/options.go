// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"log/slog"
	"time"
)

// Defaults for the mixer's timing and levels.
const (
	DefaultInitialCalmVolume      = 0.6
	DefaultEventChimeRestore      = 150 * time.Millisecond
	DefaultCompletionChimeRestore = 500 * time.Millisecond
)

type options struct {
	logger            *slog.Logger
	scheduler         Scheduler
	initialCalm       float32
	eventRestore      time.Duration
	completionRestore time.Duration
}

func defaultOptions() options {
	return options{
		logger:            slog.Default(),
		scheduler:         wallClock{},
		initialCalm:       DefaultInitialCalmVolume,
		eventRestore:      DefaultEventChimeRestore,
		completionRestore: DefaultCompletionChimeRestore,
	}
}

// Option configures a Mixer.
type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScheduler replaces the wall-clock timer used for chime restores.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithInitialCalmVolume sets the calm level applied by Start. Values are
// clamped to [0, 1].
func WithInitialCalmVolume(v float32) Option {
	return func(o *options) { o.initialCalm = clampUnit(v) }
}

// WithRestoreDelays sets how long the event and completion chimes hold
// before the calm layer is restored.
func WithRestoreDelays(event, completion time.Duration) Option {
	return func(o *options) {
		o.eventRestore = event
		o.completionRestore = completion
	}
}
