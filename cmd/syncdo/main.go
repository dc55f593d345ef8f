// Package main is the entry point for the syncdo CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"syncdo/internal/backend/resttasks"
	"syncdo/internal/cli"
	"syncdo/internal/commands"
	"syncdo/internal/config"
	"syncdo/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Optional .env in the working directory
	_ = godotenv.Load()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("no base url configured (set %s or base_url in %s)",
				config.EnvBaseURL, config.ConfigFile)
		}
		return resttasks.New(cfg.BaseURL), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
