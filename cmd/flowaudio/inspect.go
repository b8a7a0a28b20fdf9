// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/K2976/Flow/clip"
)

func runInspect(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: inspect requires at least one file", errUsage)
	}

	var errs []error
	for _, path := range fs.Args() {
		b, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		c, err := clip.Parse(name, b)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if _, err := fmt.Fprintln(stdout, c); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}
