// Package cmd implements the modelmap CLI commands.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mepankajsingh/modelmap/cmd/modelmap/app"
	"github.com/mepankajsingh/modelmap/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// config is loaded once before any command runs.
	config *app.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "modelmap",
	Short: "Inspect LLM provider catalogs and credentials",
	Long: `modelmap resolves provider credentials from layered sources and lists
each provider's chat models, either from the embedded static catalogs or
live from the provider's models endpoint.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = app.LoadConfig(configFile)
		if err != nil {
			return err
		}
		config.Verbose = config.Verbose || verbose
		config.Quiet = config.Quiet || quiet
		configureLogging(config)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $HOME/.modelmap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(newProvidersCommand())
	rootCmd.AddCommand(newModelsCommand())
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logging.Err(err).Msg("command failed")
		return err
	}
	return nil
}

// configureLogging applies the loaded configuration to the global logger.
func configureLogging(cfg *app.Config) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if cfg.Quiet {
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)
	logging.SetDefault(logging.New(os.Stderr).Level(level))
}
