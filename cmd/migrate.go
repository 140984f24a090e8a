package cmd

import (
	"fmt"

	"turf-booking/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := database.InitDB(cmd.Context(), config.Database)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			applied, err := database.Migrate(cmd.Context(), db, logger)
			if err != nil {
				return err
			}
			logger.Info("Migrations complete", zap.Int("applied", applied))
			return nil
		},
	}
}
