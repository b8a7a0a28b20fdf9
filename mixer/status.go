// SPDX-License-Identifier: EPL-2.0

package mixer

// Status is the outcome of a playback operation. The mixer reports it
// instead of returning errors so that missing audio never stops the host.
type Status int

const (
	StatusOK Status = iota
	// StatusBackendUnavailable means there is no working output device.
	// State is still tracked; only the sound is missing.
	StatusBackendUnavailable
	// StatusEncodingFailed means a layer's clip could not be produced.
	StatusEncodingFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBackendUnavailable:
		return "backend_unavailable"
	case StatusEncodingFailed:
		return "encoding_failed"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// worse returns the more severe of s and o.
func (s Status) worse(o Status) Status {
	return max(s, o)
}
