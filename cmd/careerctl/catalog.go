package main

import (
	"fmt"

	"career-compass/internal/catalog"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with content fixtures",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the catalog with overrides applied and report its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.Catalog.Dir
		}

		c, err := catalog.Load(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "areas:          %d\n", len(c.Areas))
		fmt.Fprintf(out, "quiz questions: %d\n", len(c.QuizQuestions))
		fmt.Fprintf(out, "streams:        %d\n", len(c.Streams))
		fmt.Fprintf(out, "resource exams: %d\n", len(c.Resources.Exams))
		fmt.Fprintln(out, "catalog ok")
		return nil
	},
}

func init() {
	catalogValidateCmd.Flags().String("dir", "", "override directory (default: catalog.dir)")
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}
