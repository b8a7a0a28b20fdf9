// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/K2976/Flow/mixer"
)

// Demo load signal: each event raises the score, which decays back
// towards zero at decayPerSecond.
const (
	appSwitchLoad    = 8
	notificationLoad = 6
	mindWanderedLoad = 5
	decayPerSecond   = 1.0
	maxLoad          = 100

	tickInterval = 250 * time.Millisecond
)

const ctrlC = 0x03

type demoLoad struct {
	score float64
}

func (d *demoLoad) add(v float64) {
	d.score = min(d.score+v, maxLoad)
}

func (d *demoLoad) decay(elapsed time.Duration) {
	d.score = max(d.score-decayPerSecond*elapsed.Seconds(), 0)
}

// controls is what the keyboard drives.
type controls interface {
	UpdateForScore(score float64)
	SetFocusMode(enabled bool)
	PlayEventChime()
	PlayCompletionChime()
	SetMuted(muted bool)
	Snapshot() mixer.PlaybackState
}

// handleKey applies one keystroke. It reports false when the session
// should end.
func handleKey(c controls, load *demoLoad, key byte) bool {
	switch key {
	case '1':
		load.add(appSwitchLoad)
	case '2':
		load.add(notificationLoad)
	case ' ':
		load.add(mindWanderedLoad)
	case 'f', 'F':
		c.SetFocusMode(!c.Snapshot().FocusModeActive)
		return true
	case 'c', 'C':
		c.PlayCompletionChime()
		return true
	case 'm', 'M':
		c.SetMuted(!c.Snapshot().IsMuted)
		return true
	case 'q', 'Q', ctrlC:
		return false
	default:
		return true
	}

	c.UpdateForScore(load.score)
	c.PlayEventChime()
	return true
}

func statusLine(load demoLoad, s mixer.PlaybackState) string {
	flags := ""
	if s.FocusModeActive {
		flags += " focus"
	}
	if s.IsMuted {
		flags += " muted"
	}
	return fmt.Sprintf("\rload %5.1f  calm %.2f  stress %.2f%-12s", load.score, s.CalmVolume, s.StressVolume, flags)
}

func runPlay(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config path")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	m := newMixer(ctx, cfg)
	defer func() {
		if err := m.Close(); err != nil {
			slog.Error("closing mixer", "err", err)
		}
	}()

	if st := m.Start(); st != mixer.StatusOK {
		slog.Warn("playing without full audio", "status", st)
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("setting raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}

	fmt.Fprint(stdout, "1 app switch  2 notification  space mind wandered  f focus  c complete  m mute  q quit\r\n")

	keys := make(chan byte)
	go readKeys(os.Stdin, keys)

	var load demoLoad
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprint(stdout, "\r\n")
			return nil
		case key, ok := <-keys:
			if !ok || !handleKey(m, &load, key) {
				fmt.Fprint(stdout, "\r\n")
				return nil
			}
		case <-ticker.C:
			load.decay(tickInterval)
			m.UpdateForScore(load.score)
		}
		fmt.Fprint(stdout, statusLine(load, m.Snapshot()))
	}
}

// readKeys forwards single bytes from r until it fails. It outlives the
// session when stdin stays open; the process exits soon after.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)

	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			keys <- buf[0]
		}
		if err != nil {
			return
		}
	}
}
