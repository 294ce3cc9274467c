package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/repository"
	"career-compass/internal/service"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Inspect stored feedback",
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		list, err := service.NewFeedbackService(repository.NewFeedbackRepository(db)).List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tNAME\tRATING\tMESSAGE")
		for _, f := range list {
			rating := "-"
			if f.Rating > 0 {
				rating = fmt.Sprint(f.Rating)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.CreatedAt.Format(time.RFC3339), f.Name, rating, f.Message)
		}
		return w.Flush()
	},
}

var feedbackCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of feedback records",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		n, err := service.NewFeedbackService(repository.NewFeedbackRepository(db)).Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	feedbackCmd.AddCommand(feedbackListCmd, feedbackCountCmd)
	rootCmd.AddCommand(feedbackCmd)
}
