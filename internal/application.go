package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// RunApp - runs an interactive game on in/out until the input ends or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController(conf.PlayerOne, conf.PlayerTwo)
	session := console.NewSession(logger, gameController, out)

	log.Info("Starting game", "player_one", conf.PlayerOne, "player_two", conf.PlayerTwo)
	if err := session.Run(ctx, in); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Game session closed")

	return nil
}

// ReplayGame - plays moves on a fresh game and prints the final board.
func ReplayGame(logger *slog.Logger, conf *config.Config, moves []string, out io.Writer) error {
	gameController := tictactoe.NewGameController(conf.PlayerOne, conf.PlayerTwo)
	session := console.NewSession(logger, gameController, out)

	if err := session.Replay(moves); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	return nil
}
