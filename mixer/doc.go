// SPDX-License-Identifier: EPL-2.0

// Package mixer drives the two ambient layers from the user's load score.
//
// A Mixer is either stopped or playing, with independent mute and focus
// flags. Gains follow these rules:
//
//	score n in [0,1]   calm = 1 - 0.6n, stress = 0.7n
//	focus mode         calm = 0.8, stress = 0
//	event chime        calm += 0.3 (max 1), restored after 150ms
//	completion chime   calm = 1, stress = 0, calm restored after 500ms
//
// A restore is skipped when the layer was written again after it was
// scheduled, so a chime never overwrites a newer score. Playback problems
// are reported as a Status and logged; they never stop the session.
package mixer
