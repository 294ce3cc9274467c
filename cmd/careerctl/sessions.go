package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"career-compass/internal/repository"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored exploration sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		limit, _ := cmd.Flags().GetInt("limit")

		sessions, err := repository.NewSessionFileRepository(cfg.Storage.SessionsDir).List(cmd.Context())
		if err != nil {
			return err
		}
		if limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), sessions)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTIMESTAMP\tSTUDENT\tGRADE\tAREAS")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				s.ID, s.Timestamp.Format(time.RFC3339), s.StudentName, s.Grade, len(s.SelectedAreas))
		}
		return w.Flush()
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one session as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := repository.NewSessionFileRepository(cfg.Storage.SessionsDir).GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), session)
	},
}

func init() {
	sessionsListCmd.Flags().Bool("json", false, "output sessions as JSON")
	sessionsListCmd.Flags().Int("limit", 0, "show at most this many sessions")

	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd)
	rootCmd.AddCommand(sessionsCmd)
}
