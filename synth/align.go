// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// gcdScale is the fixed-point precision used by RealGCD (1/1000 Hz).
const gcdScale = 1000.0

// RealGCD returns the greatest common divisor of two frequencies at a
// precision of 1 mHz. The result is 0 when both values round to zero.
func RealGCD(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return 0
	}

	ia := uint64(math.Round(math.Abs(a) * gcdScale))
	ib := uint64(math.Round(math.Abs(b) * gcdScale))
	for ib != 0 {
		ia, ib = ib, ia%ib
	}

	return float64(ia) / gcdScale
}

// AlignDuration returns the duration closest to target that holds a whole
// number of cycles of both freqA and freqB, so a clip of that length loops
// without a phase discontinuity. At least one common period is always used.
//
// When the frequencies share no common period at 1 mHz precision the target
// duration is returned unchanged.
func AlignDuration(freqA, freqB, target float64) float64 {
	g := RealGCD(freqA, freqB)
	if g == 0 {
		return target
	}

	period := 1.0 / g
	cycles := math.Max(1, math.Round(target/period))

	return cycles * period
}

// AlignFrequency returns the frequency nearest hz that completes a whole
// number of cycles (at least one) within duration seconds.
func AlignFrequency(hz, duration float64) float64 {
	if duration <= 0 {
		return 0
	}

	cycles := math.Max(1, math.Round(duration*hz))

	return cycles / duration
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
