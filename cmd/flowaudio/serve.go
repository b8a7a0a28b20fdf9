// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/K2976/Flow/internal/httpapi"
)

func runServe(ctx context.Context, args []string, _ io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config path")
	addr := fs.String("addr", "", "listen address (overrides server.addr)")
	autostart := fs.Bool("start", false, "start playback immediately")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	m := newMixer(ctx, cfg)
	defer func() {
		if err := m.Close(); err != nil {
			slog.Error("closing mixer", "err", err)
		}
	}()

	if *autostart {
		m.Start()
	}

	server := httpapi.New(m, httpapi.WithShutdownTimeout(cfg.Server.ShutdownTimeout))

	slog.Info("listening", "addr", cfg.Server.Addr, "version", Version)
	if err := server.Run(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	slog.Info("shut down")

	return nil
}
