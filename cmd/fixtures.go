package cmd

import "github.com/spf13/cobra"

// FixturesCmd creates the fixtures command group: every scheduled and
// played fixture across league and cup competitions.
func FixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures <career-id>",
		Short: "List fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.FixturesList(cmd.Context(), args[0]))
		},
	}
}
