package commands

import (
	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/pkg/ghstats"
	"github.com/n3il-kb/portfolio/pkg/observability"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

// NewStatsCommand creates the GitHub stats command.
func NewStatsCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [user]",
		Short: "Print GitHub profile counters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.setup(cmd, observability.ModeCLI)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			defer e.close(ctx)

			user := e.cfg.GitHub.User
			if len(args) == 1 {
				user = args[0]
			}

			stats, fetchErr := ghstats.NewClient(e.cfg.GitHub.APIBase, e.cfg.GitHub.Timeout).Fetch(ctx, user)
			if fetchErr != nil {
				e.providers.Logger.WarnContext(ctx, "github stats unavailable", "user", user, "error", fetchErr)
			}

			return terminal.WriteStats(cmd.OutOrStdout(), e.term, user, stats, fetchErr)
		},
	}
}
