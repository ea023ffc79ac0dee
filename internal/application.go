package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	log.Debug("Starting game", "log_level", conf.LogLevel)

	return run(ctx, logger, console.New(os.Stdin, os.Stdout))
}

// run - plays sessions until the players decline, the input ends or ctx is done.
func run(ctx context.Context, logger *slog.Logger, con *console.Console) error {
	log := logger.With("component", "app")
	session := usecase.NewGameSession(logger, con)

	for {
		if _, err := session.Play(ctx); err != nil {
			return finish(log, con, err)
		}

		again, err := con.AskPlayAgain(ctx)
		if err != nil {
			return finish(log, con, err)
		}

		if !again {
			return finish(log, con, nil)
		}
	}
}

// finish - closed input and cancellation end the program normally, anything else is returned.
func finish(log *slog.Logger, con *console.Console, err error) error {
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("Input finished, shutting down", "reason", err)
	default:
		return fmt.Errorf("game failed: %w", err)
	}

	if err = con.ShowFarewell(); err != nil {
		return fmt.Errorf("failed to say goodbye: %w", err)
	}

	return nil
}
