package cmd

import "github.com/spf13/cobra"

// StatsCmd creates the stats command group: season/career stats, leader
// boards, and the best eleven.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <career-id>",
		Short: "Show season and career statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.StatsGet(cmd.Context(), args[0]))
		},
	}
}
