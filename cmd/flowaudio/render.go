// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	flow "github.com/K2976/Flow"
	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/mixer"
)

func runRender(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config path")
	layerName := fs.String("layer", "calm", "layer to render (calm or stress)")
	out := fs.String("o", "", "output WAV path (- for stdout)")
	duration := fs.Float64("duration", 0, "target loop length in seconds (0 uses the config)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *out == "" {
		return fmt.Errorf("%w: render requires -o", errUsage)
	}

	l, err := mixer.ParseLayer(*layerName)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	opts := clipOptions(cfg)
	if *duration > 0 {
		opts = append(opts, clip.WithTargetDuration(*duration))
	}

	if *out == "-" {
		_, err := flow.RenderLayer(stdout, l.String(), layerSpec(cfg, l).LayerConfig, opts...)
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	c, err := flow.RenderLayer(f, l.String(), layerSpec(cfg, l).LayerConfig, opts...)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "wrote %s: %s\n", *out, c)
	return err
}
