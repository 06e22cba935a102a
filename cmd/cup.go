package cmd

import "github.com/spf13/cobra"

// CupCmd creates the cup command group: bracket, fixtures, and stats.
func CupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cup <career-id>",
		Short: "Show the cup bracket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			return emit(svc.CupGet(cmd.Context(), args[0]))
		},
	}
}
