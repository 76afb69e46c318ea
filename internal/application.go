package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/session"
)

// RunApp - runs one game session reading commands from in and writing the
// transcript to out.
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

	startingPlayer, err := conf.Player()
	if err != nil {
		return fmt.Errorf("invalid starting player: %w", err)
	}

	gameSession := session.New(logger, out, session.Options{
		StartingPlayer: startingPlayer,
		Prompt:         conf.Prompt,
		HideBoard:      conf.HideBoard,
	})

	log.Info("Starting game session", "gameID", gameSession.ID())

	if err = gameSession.Run(ctx, in); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game session ended", "gameID", gameSession.ID(), "status", gameSession.Game().Outcome().Status.String())

	return nil
}
