// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"log/slog"

	flow "github.com/K2976/Flow"
	"github.com/K2976/Flow/backend"
	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/config"
	"github.com/K2976/Flow/mixer"
)

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	setLogLevel(cfg.SlogLevel())
	return cfg, nil
}

func layerSpec(cfg config.Config, l mixer.Layer) config.LayerSpec {
	if l == mixer.Stress {
		return cfg.Layers.Stress
	}
	return cfg.Layers.Calm
}

func clipOptions(cfg config.Config) []clip.Option {
	return []clip.Option{
		clip.WithTargetDuration(cfg.Layers.TargetDuration),
		clip.WithMaxSeconds(cfg.Layers.MaxImportSeconds),
	}
}

// buildClips builds both layers. A failed layer is logged and left out of
// the map so the mixer reports it as encoding_failed.
func buildClips(ctx context.Context, cfg config.Config) map[mixer.Layer]*clip.Clip {
	specs := make([]flow.LayerSpec, 0, len(mixer.Layers))
	for _, l := range mixer.Layers {
		ls := layerSpec(cfg, l)
		specs = append(specs, flow.LayerSpec{
			Name:    l.String(),
			Config:  ls.LayerConfig,
			File:    ls.File,
			Options: clipOptions(cfg),
		})
	}

	clips := make(map[mixer.Layer]*clip.Clip, len(specs))
	for i, res := range flow.BuildLayers(ctx, specs) {
		l := mixer.Layers[i]
		if res.Err != nil {
			slog.Error("building layer", "layer", l, "err", res.Err, "status", mixer.StatusEncodingFailed)
			continue
		}
		slog.Debug("layer built", "clip", res.Clip)
		clips[l] = res.Clip
	}
	return clips
}

// openBackend returns the output device, or nil when audio is disabled or
// no device is available. Playback then continues silently.
func openBackend(cfg config.Config) mixer.Backend {
	if !cfg.Audio.Enabled {
		slog.Info("audio output disabled")
		return nil
	}

	dev, err := backend.Open(backend.WithBufferSize(cfg.Audio.BufferSize))
	if err != nil {
		slog.Warn("audio device unavailable", "err", err)
		return nil
	}
	return dev
}

func newMixer(ctx context.Context, cfg config.Config) *mixer.Mixer {
	clips := buildClips(ctx, cfg)
	return mixer.New(openBackend(cfg), clips,
		mixer.WithInitialCalmVolume(cfg.Mixer.InitialCalmVolume),
		mixer.WithRestoreDelays(cfg.Mixer.EventChimeRestore, cfg.Mixer.CompletionChimeRestore),
	)
}
