package main

import (
	"career-compass/internal/service"

	"github.com/spf13/cobra"
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Issue an admin JWT for the listing endpoints",
	Long: `issue-token signs an admin token with the configured auth secret. Send it
as "Authorization: Bearer <token>" to GET /api/session and
GET /api/feedback/entries when auth is enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		authService, err := service.NewAuthService(cfg.Auth)
		if err != nil {
			return err
		}
		token, err := authService.GenerateAdminToken(cmd.Context(), subject, ttl)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), token)
	},
}

func init() {
	issueTokenCmd.Flags().String("subject", "careerctl", "token subject recorded in request logs")
	issueTokenCmd.Flags().Duration("ttl", 0, "token lifetime (default: auth.token_ttl)")
	rootCmd.AddCommand(issueTokenCmd)
}
