package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/imusic/internal/app"
	"github.com/llehouerou/imusic/internal/config"
	"github.com/llehouerou/imusic/internal/logger"
	"github.com/llehouerou/imusic/internal/stderr"
)

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "imusic",
	Short:         "Terminal music player with a local library and playlists",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ~/.config/imusic/config.toml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it).
func loadConfig() error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	return nil
}

// setupLogging points the global logger at target, or at the configured log
// file when target is empty.
func setupLogging(target string) (func(), error) {
	if target == "" {
		var err error
		if target, err = cfg.LogFile(); err != nil {
			return nil, errors.Wrap(err, "resolve log file")
		}
	}
	closer, err := logger.Init(logger.ForTarget(target, cfg.Log.Level))
	if err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	return func() { closer.Close() }, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	closeLog, err := setupLogging("")
	if err != nil {
		return err
	}
	defer closeLog()

	// Audio libraries write to stderr and would corrupt the TUI.
	if err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	if err := a.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("initial library load")
	}

	p := tea.NewProgram(app.NewModel(a.Controller, a.Catalog), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}
	return nil
}
