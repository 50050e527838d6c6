package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snakeruins/internal/config"
	"snakeruins/internal/desktop"
	"snakeruins/internal/engine"
	"snakeruins/internal/game"
	"snakeruins/internal/spectate"
	"snakeruins/internal/store"
	"snakeruins/internal/terminal"
)

// glfw and gl calls must stay on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("exit")
		os.Exit(1)
	}
}

func setupLogging(cfg config.Config) (func(), error) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.Host != config.HostTerminal {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return func() {}, nil
	}
	// The terminal host owns the screen, so logs go to a file.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(cfg.DataDir, "snake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

type host interface {
	engine.Host
	Close()
}

func run(cfg config.Config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.New(cfg.DataDir, log.Logger)
	if err != nil {
		return err
	}
	logger := log.Logger
	session := game.NewGameSession(game.SessionConfig{
		Seed:    cfg.Seed,
		Players: cfg.Players,
		Tier:    cfg.Difficulty,
		Logger:  &logger,
	}, st)
	log.Info().
		Str("host", cfg.Host).
		Str("data", st.Dir()).
		Uint64("seed", session.Seed).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var h host
	switch cfg.Host {
	case config.HostTerminal:
		h, err = terminal.New(session, nil, log.Logger)
	default:
		h, err = desktop.New(session, desktop.Options{
			CellSize: cfg.CellSize,
			Mute:     cfg.Mute,
			Logger:   log.Logger,
		})
	}
	if err != nil {
		return err
	}
	defer h.Close()

	runner := engine.NewRunner(session, h)
	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub(log.Logger)
		hub.Publish(session.View())
		runner.AfterTicks = func() { hub.Publish(session.View()) }
		go func() {
			if err := hub.Serve(ctx, cfg.SpectateAddr); err != nil {
				log.Error().Err(err).Msg("spectator feed stopped")
			}
		}()
	}

	err = runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
