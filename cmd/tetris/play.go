package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Left/Right, H/L  - Move (hold to auto-shift)
  Up, W, X         - Rotate
  Down, S          - Soft drop (hold)
  Space            - Hard drop
  C                - Hold piece
  P                - Pause
  R                - Restart
  Esc              - Leave
  Q/Ctrl+C         - Quit

After game over any key starts a new game.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./fast.yaml
  tetris play --log-file ./tetris.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// gameArg returns the game named on the command line, defaulting to tetris.
func gameArg(args []string) (string, error) {
	gameID := tetris.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}
	return gameID, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, saver(store), runtimeConfig(), tui.Options{
		Logger:         logger,
		ReleaseTimeout: releaseTimeout(logger),
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
