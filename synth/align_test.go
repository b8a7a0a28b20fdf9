// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

func isWhole(v, tolerance float64) bool {
	return math.Abs(v-math.Round(v)) <= tolerance
}

func TestRealGCD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"calm carriers", 432, 442, 2},
		{"stress carriers", 200, 240, 40},
		{"equal", 440, 440, 440},
		{"fractional", 0.5, 0.75, 0.25},
		{"millihertz precision", 100.001, 100.002, 0.001},
		{"negative input", -200, 240, 40},
		{"one zero", 0, 15, 15},
		{"both round to zero", 0.0001, 0.0004, 0},
		{"nan", math.NaN(), 10, 0},
		{"inf", math.Inf(1), 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RealGCD(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RealGCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAlignDuration_Presets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    LayerConfig
		target float64
	}{
		{"calm", Calm, TargetDuration},
		{"stress", Stress, TargetDuration},
		{"calm short", Calm, 1.3},
		{"stress tiny target", Stress, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := AlignDuration(tt.cfg.LeftHz(), tt.cfg.RightHz(), tt.target)
			if d <= 0 || math.IsInf(d, 0) || math.IsNaN(d) {
				t.Fatalf("AlignDuration() = %v, want positive finite", d)
			}

			if !isWhole(d*tt.cfg.LeftHz(), 1e-6) {
				t.Errorf("left carrier: %v cycles in %v s is not whole", d*tt.cfg.LeftHz(), d)
			}
			if !isWhole(d*tt.cfg.RightHz(), 1e-6) {
				t.Errorf("right carrier: %v cycles in %v s is not whole", d*tt.cfg.RightHz(), d)
			}
		})
	}
}

func TestAlignDuration_ProductionValues(t *testing.T) {
	t.Parallel()

	// gcd(432, 442) = 2 Hz -> 0.5 s period, 60 periods.
	if got := AlignDuration(432, 442, 30); math.Abs(got-30) > 1e-9 {
		t.Errorf("AlignDuration(432, 442, 30) = %v, want 30", got)
	}
	// gcd(200, 240) = 40 Hz -> 25 ms period, 1200 periods.
	if got := AlignDuration(200, 240, 30); math.Abs(got-30) > 1e-9 {
		t.Errorf("AlignDuration(200, 240, 30) = %v, want 30", got)
	}
}

func TestAlignDuration_AtLeastOnePeriod(t *testing.T) {
	t.Parallel()

	// gcd(3, 5) = 1 Hz; a 0.1 s target still gets one full second.
	if got := AlignDuration(3, 5, 0.1); got != 1 {
		t.Errorf("AlignDuration(3, 5, 0.1) = %v, want 1", got)
	}
	if got := AlignDuration(3, 5, 0); got != 1 {
		t.Errorf("AlignDuration(3, 5, 0) = %v, want 1", got)
	}
}

func TestAlignDuration_ZeroGCDFallsBackToTarget(t *testing.T) {
	t.Parallel()

	got := AlignDuration(0.0001, 0.0002, 12.5)
	if got != 12.5 {
		t.Errorf("AlignDuration() = %v, want target 12.5", got)
	}
}

func TestAlignFrequency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hz       float64
		duration float64
		want     float64
	}{
		{"swell over 30 s", SwellHz, 30, 2.0 / 30},
		{"already whole", 0.5, 10, 0.5},
		{"rounds up", 0.09, 10, 0.1},
		{"at least one cycle", 0.01, 5, 0.2},
		{"zero duration", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := AlignFrequency(tt.hz, tt.duration)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AlignFrequency(%v, %v) = %v, want %v", tt.hz, tt.duration, got, tt.want)
			}
			if tt.duration > 0 && !isWhole(got*tt.duration, 1e-9) {
				t.Errorf("%v cycles in %v s is not whole", got*tt.duration, tt.duration)
			}
		})
	}
}
