package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/gui"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Left/Right  - Move paddle (held)
  Y/Enter     - Play again (after a round ends)
  N/Esc       - Stop (after a round ends)
  Q           - Quit

Examples:
  breakout window
  breakout window --scale 2 --preset hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "breakout")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		store = nil
	}

	sess := session.New(session.Options{
		Config:   cfg,
		Logger:   logger,
		Observer: storage.NewJournal(store, "window", logger),
	})

	runErr := gui.Run(context.Background(), sess, flagScale)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
