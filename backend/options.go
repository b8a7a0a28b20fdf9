// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"log/slog"
	"time"
)

type options struct {
	logger     *slog.Logger
	bufferSize time.Duration
}

// Option configures a Device.
type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBufferSize sets the device buffer length. Zero lets the driver pick.
func WithBufferSize(d time.Duration) Option {
	return func(o *options) { o.bufferSize = d }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With("component", "backend")
	return o
}
