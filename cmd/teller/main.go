// Command teller is a terminal client for the banking-assistant backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/api"
	"github.com/tellerhq/teller/bubbletea"
	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/json"
	"github.com/tellerhq/teller/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "teller: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "path to config file")
	baseURL := flag.String("base-url", "", "backend base URL (overrides config)")
	statePath := flag.String("state", "", "session state file (overrides config)")
	logPath := flag.String("debug", "", "write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *statePath != "" {
		cfg.StatePath = *statePath
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	// Buffered so the controller never blocks on emit while the UI is
	// between reads.
	events := make(chan teller.Event, 64)

	ctrl := teller.NewController(
		api.New(cfg.BaseURL, api.WithLogger(log)),
		teller.WithStore(json.NewStore(cfg.StatePath)),
		teller.WithLogger(log),
		teller.WithEventHandler(func(e teller.Event) { events <- e }),
	)
	ctrl.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bubbletea.Run(ctx, bubbletea.New(ctrl, events, cfg.Theme()))
}
