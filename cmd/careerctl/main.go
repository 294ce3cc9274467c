// Package main is the careerctl operations CLI: migrations, admin tokens,
// and read-only inspection of stored sessions, feedback and catalog data.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"career-compass/internal/config"
	"career-compass/internal/logger"

	"github.com/spf13/cobra"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "careerctl",
	Short: "Operate a career-compass deployment",
	Long: `careerctl runs database migrations, issues admin tokens for the listing
endpoints, and inspects stored sessions, feedback and catalog fixtures.

It reads the same config.yaml and environment variables as the API server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return logger.Initialize(cfg.Logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
