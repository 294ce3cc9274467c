package main

import (
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply feedback schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
			return err
		}
		logger.Get().Info("Migrations applied", zap.String("driver", cfg.DB.Driver))
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
