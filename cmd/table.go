package cmd

import "github.com/spf13/cobra"

// TableCmd creates the table command group: the current league standings.
func TableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <career-id>",
		Short: "Show the current league table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.TableGet(cmd.Context(), args[0]))
		},
	}
}
