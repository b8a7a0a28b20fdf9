// SPDX-License-Identifier: EPL-2.0

// Command flowaudio renders, inspects and plays the binaural ambient
// layers, and serves the mixer over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Version is injected at build time with -ldflags.
var Version = "0.1.0-dev"

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = []command{
	{"render", "synthesize a layer to a WAV file", runRender},
	{"inspect", "print the header of a WAV clip", runInspect},
	{"serve", "run the mixer behind the HTTP control API", runServe},
	{"play", "play the layers with keyboard-driven demo load", runPlay},
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		printUsage(os.Stderr)
		os.Exit(2)
	default:
		slog.Error("flowaudio failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, args[1:], stdout)
		}
	}

	if args[0] == "version" {
		_, err := fmt.Fprintln(stdout, "flowaudio", Version)
		return err
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: flowaudio <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "  %-8s %s\n", "version", "print the version")
}

// setLogLevel replaces the default logger once a config has been loaded.
func setLogLevel(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
