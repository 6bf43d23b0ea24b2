package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// logPath is where terminal play logs, away from the alt screen.
const logPath = "~/.breakout/breakout.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/H/A    - Move paddle left
  Right/L/D   - Move paddle right
  Y/Enter     - Play again (after a round ends)
  N/Esc       - Stop (after a round ends)
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a tapped direction stays held for
loop.key_hold_ms milliseconds. Hold the key down to keep moving.

Examples:
  breakout play
  breakout play --preset easy
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logOut io.Writer = os.Stderr
	if logFile, logErr := openLogFile(); logErr == nil {
		defer logFile.Close()
		logOut = logFile
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
	}
	logger := newLogger(logOut, "breakout")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	sess := session.New(session.Options{
		Config:   cfg,
		Logger:   logger,
		Observer: storage.NewJournal(store, "terminal", logger),
	})

	runErr := tui.Run(sess, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.TickRate,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens the terminal play log for appending.
func openLogFile() (*os.File, error) {
	path := expandHome(logPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
