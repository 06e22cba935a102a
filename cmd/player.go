package cmd

import "github.com/spf13/cobra"

// PlayerCmd creates the player command group: lookup of one player's view.
func PlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <career-id> <player-id>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.PlayerGet(cmd.Context(), args[0], args[1]))
		},
	}
}
