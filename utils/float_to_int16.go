// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 quantizes x to a signed 16-bit PCM value.
// x is clamped to [-1, 1] and scaled by 32767, rounding half away from zero,
// so the result is always within [-32767, 32767].
func Float64ToInt16(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return int16(math.Round(x * math.MaxInt16))
}

// Float32ToFloat64 widens an interleaved float32 buffer into dst and returns
// the number of values written.
func Float32ToFloat64(dst []float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}
	return n
}
