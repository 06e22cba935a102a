package cmd

import "github.com/spf13/cobra"

// TeamCmd creates the team command group: lookup of one team's view.
func TeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <career-id> <team-id>",
		Short: "Show one team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.TeamGet(cmd.Context(), args[0], args[1]))
		},
	}
}
