// Package main is the entry point for the quickread CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/browser"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/fetch"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/services"
	"github.com/custodia-labs/quickread-cli/internal/logger"
	"github.com/custodia-labs/quickread-cli/internal/normalisers"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires adapters into services for configDir.
func bootstrap(configDir string) (*cli.Services, func(), error) {
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, nil, err
		}
		configDir = dir
	}

	var configStore driven.ConfigStore
	var watch func(ctx context.Context) error
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
		watch = func(ctx context.Context) error {
			w, err := file.NewWatcher(fileStore, func() {
				logger.Info("settings reloaded from %s", fileStore.Path())
			})
			if err != nil {
				return err
			}
			return w.Run(ctx)
		}
	}
	settingsService := services.NewSettingsService(configStore)
	if err := settingsService.Validate(); err != nil {
		logger.Warn("settings: %v", err)
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("read settings: %w", err)
	}

	// Reading still works when the database cannot be opened; positions
	// are then kept for this run only.
	var historyStore driven.HistoryStore
	cleanup := func() {}
	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		logger.Warn("history unavailable, positions will not be saved: %v", err)
		historyStore = memory.NewHistoryStore()
	} else {
		historyStore = store.HistoryStore()
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("close history: %v", err)
			}
		}
	}

	historyService := services.NewHistoryService(historyStore, settingsService)
	captureService := services.NewCaptureService(
		browser.NewBridge(),
		fetch.New(fetch.ConfigFromSettings(settings.Fetch)),
		normalisers.NewDefaultRegistry(),
		clipboard.NewSystem(),
	)
	readerService := services.NewReaderService(settingsService, historyService)

	return &cli.Services{
		Capture:     captureService,
		Reader:      readerService,
		History:     historyService,
		Settings:    settingsService,
		WatchConfig: watch,
	}, cleanup, nil
}
