package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop/client"
	gameconfig "github.com/tomz197/dodger/internal/loop/config"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := gameconfig.FromEnv()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("DODGER_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, config.GetEnv("DODGER_LOG_LEVEL", "info"))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := client.NewClient(os.Stdin, os.Stdout, client.ClientOptions{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	return c.Run(ctx)
}
