package cmd

import (
	"fmt"
	"os"

	"vanishnote/cmd/client/cmd/note"
	"vanishnote/cmd/client/cmd/track"
	"vanishnote/internal/app/client"
	"vanishnote/internal/app/client/config"
	"vanishnote/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "vanishnote",
	Short: "VanishNote - share secrets that destroy themselves",
	Long: `VanishNote is a client for sharing ephemeral secrets.

A note is stored behind a short random identifier and disappears after
its first read (or after a fixed time window). Notes can be gated by a
password, a decoy password revealing a substitute message, or a country
restriction, and each note carries a tracking link that records when and
from where it was read.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "local"
	}

	log := logger.New(cfg.Env)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}

	cmd.SetContext(client.IntoContext(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "VanishNote server address")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(note.Cmd)
	rootCmd.AddCommand(track.Cmd)
}
