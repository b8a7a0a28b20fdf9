// SPDX-License-Identifier: EPL-2.0

package flow

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/synth"
)

// buildConcurrency bounds how many layers are built at once.
const buildConcurrency = 2

// RenderLayer generates a layer and writes its WAV container to w.
func RenderLayer(w io.Writer, name string, cfg synth.LayerConfig, opts ...clip.Option) (*clip.Clip, error) {
	c, err := clip.Generate(name, cfg, opts...)
	if err != nil {
		return nil, err
	}

	if _, err := c.NewReader().WriteTo(w); err != nil {
		return nil, fmt.Errorf("writing %s: %w", name, err)
	}

	return c, nil
}

// ImportLayer decodes the audio file at path into a loopable clip. The
// decoder is chosen by extension from Formats.
func ImportLayer(name, path string, opts ...clip.Option) (*clip.Clip, error) {
	dec, err := Formats.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("importing %s from %s: %w", name, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", name, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return clip.FromSource(name, src, opts...)
}

// LayerSpec describes how to build one layer.
type LayerSpec struct {
	Name   string
	Config synth.LayerConfig
	// File, when set, imports the layer from audio instead of
	// synthesizing Config.
	File    string
	Options []clip.Option
}

// LayerResult is the outcome of building one LayerSpec.
type LayerResult struct {
	Name string
	Clip *clip.Clip
	Err  error
}

// BuildLayer synthesizes or imports a single layer.
func BuildLayer(spec LayerSpec) (*clip.Clip, error) {
	if spec.File != "" {
		return ImportLayer(spec.Name, spec.File, spec.Options...)
	}
	return clip.Generate(spec.Name, spec.Config, spec.Options...)
}

// BuildLayers builds every spec concurrently. Failures are isolated: each
// result carries its own error and a failed layer never cancels the
// others. Results are in spec order.
func BuildLayers(ctx context.Context, specs []LayerSpec) []LayerResult {
	results := make([]LayerResult, len(specs))

	var g errgroup.Group
	g.SetLimit(buildConcurrency)

	for i, spec := range specs {
		results[i].Name = spec.Name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Clip, results[i].Err = BuildLayer(spec)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
