package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game of Snake in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  R                - New game (after game over)
  Ctrl+S           - Save a text screenshot
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file /tmp/snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, err := snake.NewTheme(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs are dropped unless a file is set.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	runErr := tui.Run(snake.New(theme), rc, tui.Options{Logger: logger})
	_ = closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
