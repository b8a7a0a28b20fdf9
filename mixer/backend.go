// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"time"

	"github.com/K2976/Flow/clip"
)

// Backend plays the encoded clips as endless loops with a gain per layer.
type Backend interface {
	// Load prepares c as the loop for layer l.
	Load(l Layer, c *clip.Clip) error
	// Start begins looping every loaded layer from its first frame.
	Start() error
	// Stop halts all loops.
	Stop() error
	// SetGain sets the output gain of layer l. It must not block.
	SetGain(l Layer, gain float32)
	Close() error
}

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay. Callbacks may run on any
// goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
