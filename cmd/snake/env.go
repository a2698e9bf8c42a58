package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/audio"
	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/logging"
	"github.com/vovakirdan/term-snake/internal/storage"
)

func dataDir() string {
	return config.DataDir()
}

// env is what every interactive command needs: configuration, a logger,
// the optional preference store and sound cues.
type env struct {
	cfg    config.SnakeConfig
	logger *log.Logger
	store  *storage.Store // nil when disabled or unavailable
	cues   audio.Cues
	logOut io.Closer
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	logger, logOut, err := logging.New(logging.Options{
		File:   flagLogFile,
		Prefix: "snake",
		Level:  flagLogLevel,
	})
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger, logOut: logOut}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("preferences disabled", "error", err)
		} else {
			e.store = store
		}
	}

	e.cues = audio.New(cfg.Sound.Enabled, logger)
	return e, nil
}

func (e *env) Close() {
	e.cues.Close()
	if e.store != nil {
		e.store.Close()
	}
	e.logOut.Close()
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtime returns the terminal size and global seed.
func (e *env) runtime() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		PollRate: e.cfg.Loop.PollRate,
		Seed:     flagSeed,
	}
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
