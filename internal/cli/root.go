package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/plazaterm/plaza/internal/config"
	"github.com/plazaterm/plaza/internal/errors"
	"github.com/plazaterm/plaza/internal/logging"
	"github.com/plazaterm/plaza/internal/metadata"
	"github.com/plazaterm/plaza/internal/player"
	"github.com/plazaterm/plaza/internal/tui"
)

var (
	cfgFile   string
	jsonOut   bool
	verbose   bool
	streamURL string

	cfg *config.Config

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "plaza",
	Short: "Listen to Nightwave Plaza from the terminal",
	Long: `Plaza streams Nightwave Plaza, the 24/7 vaporwave internet radio,
into your terminal with live track metadata and playback controls.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE:          runPlayer,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.plazarc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&streamURL, "url", "u", "", "stream URL (overrides config)")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if verbose && cfg.Log.Level != "debug" {
		cfg.Log.Level = "debug"
	}

	// Every subcommand routes logs per config; the terminal stays clean.
	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logCloser = closer

	return nil
}

func runPlayer(cmd *cobra.Command, args []string) error {
	url := streamURL
	if url == "" {
		url = player.PickStream(cfg.Stream)
	}

	ctrl, err := player.Start(cfg.Player, url)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cell := metadata.NewCell()
	poller := metadata.NewPoller(cfg.Metadata, cell)
	go poller.Run(ctx)

	log.Info().Str("url", url).Msg("playback started")

	return tui.Run(cfg.TUI, ctrl, cell)
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
