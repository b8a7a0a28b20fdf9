// SPDX-License-Identifier: EPL-2.0

package mixer

// PlaybackState is the mixer's view of the session. Volumes are the
// logical layer levels in [0, 1]; while muted the backend receives 0 but
// these values are kept.
type PlaybackState struct {
	IsPlaying       bool    `json:"is_playing"`
	IsMuted         bool    `json:"is_muted"`
	FocusModeActive bool    `json:"focus_mode_active"`
	CalmVolume      float32 `json:"calm_volume"`
	StressVolume    float32 `json:"stress_volume"`
}

// Volume returns the logical volume of l.
func (s PlaybackState) Volume(l Layer) float32 {
	if l == Stress {
		return s.StressVolume
	}
	return s.CalmVolume
}

func (s *PlaybackState) setVolume(l Layer, v float32) {
	if l == Stress {
		s.StressVolume = v
		return
	}
	s.CalmVolume = v
}
