// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"strings"
)

// Layer identifies one of the two ambient loops.
type Layer int

const (
	Calm Layer = iota
	Stress

	numLayers = 2
)

// Layers lists every layer in a stable order.
var Layers = [numLayers]Layer{Calm, Stress}

func (l Layer) String() string {
	switch l {
	case Calm:
		return "calm"
	case Stress:
		return "stress"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

func (l Layer) valid() bool { return l >= 0 && l < numLayers }

// ParseLayer maps "calm" or "stress" (any case) to a Layer.
func ParseLayer(s string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "calm":
		return Calm, nil
	case "stress":
		return Stress, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, s)
	}
}

func (l Layer) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, int(l))
	}
	return []byte(l.String()), nil
}

func (l *Layer) UnmarshalText(b []byte) error {
	v, err := ParseLayer(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
