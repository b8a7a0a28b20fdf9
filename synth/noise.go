// SPDX-License-Identifier: EPL-2.0

package synth

// defaultNoiseSeed replaces a zero seed; xorshift never leaves the all-zero state.
const defaultNoiseSeed uint64 = 0x2545F4914F6CDD1D

// rightSeedSalt derives the right channel's noise seed from the layer seed so
// the two brown-noise beds stay uncorrelated.
const rightSeedSalt uint64 = 0x9E3779B97F4A7C15

// Noise is a deterministic xorshift64 generator used to seed brown-noise beds.
// A Noise must not be shared between goroutines or layers.
type Noise struct {
	state uint64
}

// NewNoise returns a generator seeded with seed.
func NewNoise(seed uint64) *Noise {
	if seed == 0 {
		seed = defaultNoiseSeed
	}
	return &Noise{state: seed}
}

// Next advances the register and returns a value in [-1, 1).
func (n *Noise) Next() float64 {
	x := n.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	n.state = x

	return float64(x%1_000_000)/500_000.0 - 1.0
}

// State returns the current register value.
func (n *Noise) State() uint64 { return n.state }
