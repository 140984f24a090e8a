package cmd

import (
	"fmt"
	"os"

	"turf-booking/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	port       string
}

// Execute runs the turf-booking CLI.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "turf-booking: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "turf-booking",
		Short:         "Sports turf booking marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", ".env", "path to the .env config file")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	return cmd
}

// bootstrap loads config and the logger shared by every subcommand.
func bootstrap(opts *rootOptions) (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.port != "" {
		config.App.Port = opts.port
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v, falling back to production logger\n", err)
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, nil, fmt.Errorf("init logger: %w", err)
		}
	}
	return config, logger, nil
}
