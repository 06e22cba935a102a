package cmd

import "github.com/spf13/cobra"

// SquadCmd creates the squad command group: the player ids registered to
// one team.
func SquadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squad <career-id> <team-id>",
		Short: "Show one team's squad",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.SquadGet(cmd.Context(), args[0], args[1]))
		},
	}
}
