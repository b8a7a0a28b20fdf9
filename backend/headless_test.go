// SPDX-License-Identifier: EPL-2.0

//go:build headless

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/mixer"
	"github.com/K2976/Flow/synth"
)

func TestHeadlessDeviceWithMixer(t *testing.T) {
	t.Parallel()

	dev, err := Open()
	require.NoError(t, err)

	calm, err := clip.Generate("calm", synth.Calm, clip.WithTargetDuration(0.5))
	require.NoError(t, err)
	stress, err := clip.Generate("stress", synth.Stress, clip.WithTargetDuration(0.1))
	require.NoError(t, err)

	m := mixer.New(dev, map[mixer.Layer]*clip.Clip{mixer.Calm: calm, mixer.Stress: stress})
	require.Equal(t, mixer.StatusOK, m.Start())
	assert.True(t, dev.Running())

	m.UpdateForScore(100)
	assert.InDelta(t, 0.4, dev.Gain(mixer.Calm), 1e-6)
	assert.InDelta(t, 0.7, dev.Gain(mixer.Stress), 1e-6)

	require.NoError(t, m.Close())
	assert.False(t, dev.Running())
	assert.ErrorIs(t, dev.Load(mixer.Calm, calm), ErrClosed)
}
