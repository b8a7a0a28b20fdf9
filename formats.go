// SPDX-License-Identifier: EPL-2.0

package flow

import (
	"github.com/K2976/Flow/audio"
	"github.com/K2976/Flow/formats/aiff"
	"github.com/K2976/Flow/formats/mp3"
	"github.com/K2976/Flow/formats/vorbis"
	"github.com/K2976/Flow/formats/wav"
)

// NewRegistry returns a registry with every supported import format,
// keyed by file extension.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{}, "wave")
	r.Register("aiff", aiff.Decoder{}, "aif")
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{}, "oga")
	return r
}

// Formats is the registry used by ImportLayer.
var Formats = NewRegistry()
