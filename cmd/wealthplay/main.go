package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jugadveer/wealthplay-cli/internal/clients/wealthplay"
	"github.com/jugadveer/wealthplay-cli/internal/common"
	"github.com/jugadveer/wealthplay-cli/internal/views"
)

func main() {
	configPath := os.Getenv("WEALTHPLAY_CONFIG")
	if configPath == "" {
		configPath = "wealthplay.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(config.Logging.Level)
	common.PrintBanner(config, logger)

	client, err := wealthplay.NewClient(config.Server.BaseURL,
		wealthplay.WithLogger(logger),
		wealthplay.WithTimeout(config.Server.GetTimeout()),
		wealthplay.WithRateLimit(config.Server.RateLimit),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info().Msg("Shutdown signal received")
		cancel()
	}()

	app := views.NewApp(config, client, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("application failed")
		os.Exit(1)
	}
}
