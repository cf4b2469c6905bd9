package main

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/imusic/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the player headless, controlled through the desktop media keys",
	Long: `Run the playback controller without the terminal UI.

The player restores the last song, volume and loop setting, and publishes
itself to the desktop media session so media keys and widgets can drive it.
Stop it with Ctrl+C.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	closeLog, err := setupLogging("stderr")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	if err := a.Start(ctx); err != nil {
		log.Error().Err(err).Msg("initial library load")
	}

	s := a.Controller.Session()
	log.Info().
		Int("songs", len(a.Controller.Catalog())).
		Str("current", s.SongPath()).
		Int("volume", s.Volume).
		Msg("imusic serving")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	return a.Close()
}
