// Package main is the entry point for the todopad CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"todopad/internal/backend/sqlite"
	"todopad/internal/cli"
	"todopad/internal/commands"
	"todopad/internal/config"
	"todopad/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
		return sqlite.New(cfg.DBPath, logger), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
